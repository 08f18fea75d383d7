package leavebalance

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	leavebalanceerrors "go-leave/internal/leavebalance/errors"
)

//go:generate mockgen -source=leave_balance_service.go -destination=mock/leave_balance_service_mock.go -package=mock

type Service interface {
	GetBalance(ctx context.Context, employeeID, leaveTypeID uuid.UUID) (*LeaveBalanceResponse, error)
	GetBalancesByEmployee(ctx context.Context, employeeID uuid.UUID) ([]LeaveBalanceResponse, error)
	Adjust(ctx context.Context, adjustedBy string, req AdjustBalanceRequest) (*LeaveBalanceResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	ledger Ledger
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, ledger Ledger, logger ...*zap.Logger) Service {
	l := zap.L().Named("leavebalance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{db: db, repo: repo, ledger: ledger, logger: l}
}

// GetBalance reads through the ledger so a first look at a fresh employee
// provisions the row instead of returning not found.
func (s *service) GetBalance(ctx context.Context, employeeID, leaveTypeID uuid.UUID) (*LeaveBalanceResponse, error) {
	balance, err := s.ledger.GetOrCreate(ctx, employeeID, leaveTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leavebalanceerrors.ErrLeaveTypeNotFound
		}
		return nil, err
	}
	resp := mapBalanceToResponse(balance)
	return &resp, nil
}

func (s *service) GetBalancesByEmployee(ctx context.Context, employeeID uuid.UUID) ([]LeaveBalanceResponse, error) {
	balances, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]LeaveBalanceResponse, 0, len(balances))
	for i := range balances {
		responses = append(responses, mapBalanceToResponse(&balances[i]))
	}
	return responses, nil
}

func (s *service) Adjust(ctx context.Context, adjustedBy string, req AdjustBalanceRequest) (*LeaveBalanceResponse, error) {
	if req.Amount.IsZero() {
		return nil, leavebalanceerrors.ErrInvalidAdjustment
	}

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return nil, leavebalanceerrors.ErrInvalidAdjustment
	}
	leaveTypeID, err := uuid.Parse(req.LeaveTypeID)
	if err != nil {
		return nil, leavebalanceerrors.ErrInvalidAdjustment
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	txLedger := s.ledger.WithTx(tx)

	var balance *LeaveBalance
	if req.Amount.IsNegative() {
		balance, err = txLedger.Debit(ctx, employeeID, leaveTypeID, req.Amount.Abs(), req.Unit)
	} else {
		balance, err = txLedger.Credit(ctx, employeeID, leaveTypeID, req.Amount, req.Unit)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leavebalanceerrors.ErrLeaveTypeNotFound
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("leave balance adjusted",
		zap.String("employee_id", req.EmployeeID),
		zap.String("leave_type_id", req.LeaveTypeID),
		zap.String("amount", req.Amount.String()),
		zap.String("unit", req.Unit),
		zap.String("reason", req.Reason),
		zap.String("adjusted_by", adjustedBy),
	)

	resp := mapBalanceToResponse(balance)
	return &resp, nil
}

func mapBalanceToResponse(balance *LeaveBalance) LeaveBalanceResponse {
	return LeaveBalanceResponse{
		ID:            balance.ID.String(),
		EmployeeID:    balance.EmployeeID.String(),
		LeaveTypeID:   balance.LeaveTypeID.String(),
		BalanceAmount: balance.BalanceAmount,
		BalanceUnit:   balance.BalanceUnit,
		UpdatedAt:     balance.UpdatedAt,
	}
}
