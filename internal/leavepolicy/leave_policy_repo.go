package leavepolicy

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-leave/internal/shared/connection"
)

//go:generate mockgen -source=leave_policy_repo.go -destination=mock/leave_policy_repo_mock.go -package=mock

type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreatePolicy(ctx context.Context, policy *LeavePolicy) error
	FindAllPolicies(ctx context.Context) ([]LeavePolicy, error)
	FindPolicyByID(ctx context.Context, id uuid.UUID) (*LeavePolicy, error)
	FindPolicyByType(ctx context.Context, leaveTypeID uuid.UUID) (*LeavePolicy, error)
	UpdatePolicy(ctx context.Context, policy *LeavePolicy) error

	CreateSetting(ctx context.Context, setting *EmployeeLeaveSetting) error
	FindSettingsByEmployee(ctx context.Context, employeeID uuid.UUID) ([]EmployeeLeaveSetting, error)
	FindSettingByEmployeeAndType(ctx context.Context, employeeID, leaveTypeID uuid.UUID) (*EmployeeLeaveSetting, error)
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

func (r *repository) CreatePolicy(ctx context.Context, policy *LeavePolicy) error {
	return r.db.WithContext(ctx).Create(policy).Error
}

func (r *repository) FindAllPolicies(ctx context.Context) ([]LeavePolicy, error) {
	var policies []LeavePolicy
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&policies).Error
	return policies, err
}

func (r *repository) FindPolicyByID(ctx context.Context, id uuid.UUID) (*LeavePolicy, error) {
	var policy LeavePolicy
	err := r.db.WithContext(ctx).First(&policy, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &policy, nil
}

func (r *repository) FindPolicyByType(ctx context.Context, leaveTypeID uuid.UUID) (*LeavePolicy, error) {
	var policy LeavePolicy
	err := r.db.WithContext(ctx).First(&policy, "leave_type_id = ?", leaveTypeID).Error
	if err != nil {
		return nil, err
	}
	return &policy, nil
}

func (r *repository) UpdatePolicy(ctx context.Context, policy *LeavePolicy) error {
	return r.db.WithContext(ctx).Save(policy).Error
}

func (r *repository) CreateSetting(ctx context.Context, setting *EmployeeLeaveSetting) error {
	return r.db.WithContext(ctx).Create(setting).Error
}

func (r *repository) FindSettingsByEmployee(ctx context.Context, employeeID uuid.UUID) ([]EmployeeLeaveSetting, error) {
	var settings []EmployeeLeaveSetting
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at ASC").
		Find(&settings).Error
	return settings, err
}

func (r *repository) FindSettingByEmployeeAndType(ctx context.Context, employeeID, leaveTypeID uuid.UUID) (*EmployeeLeaveSetting, error) {
	var setting EmployeeLeaveSetting
	err := r.db.WithContext(ctx).
		First(&setting, "employee_id = ? AND leave_type_id = ?", employeeID, leaveTypeID).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}
