package leavebalance

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-leave/internal/shared/connection"
)

//go:generate mockgen -source=leave_balance_repo.go -destination=mock/leave_balance_repo_mock.go -package=mock

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, balance *LeaveBalance) error
	FindByEmployeeAndType(ctx context.Context, employeeID, leaveTypeID uuid.UUID) (*LeaveBalance, error)
	FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]LeaveBalance, error)
	Update(ctx context.Context, balance *LeaveBalance) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.GormWithTx(r.db, tx)}
}

func (r *repository) Create(ctx context.Context, balance *LeaveBalance) error {
	return r.db.WithContext(ctx).Create(balance).Error
}

func (r *repository) FindByEmployeeAndType(ctx context.Context, employeeID, leaveTypeID uuid.UUID) (*LeaveBalance, error) {
	var balance LeaveBalance
	err := r.db.WithContext(ctx).
		First(&balance, "employee_id = ? AND leave_type_id = ?", employeeID, leaveTypeID).Error
	if err != nil {
		return nil, err
	}
	return &balance, nil
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]LeaveBalance, error) {
	var balances []LeaveBalance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at ASC").
		Find(&balances).Error
	return balances, err
}

func (r *repository) Update(ctx context.Context, balance *LeaveBalance) error {
	return r.db.WithContext(ctx).Save(balance).Error
}
