package leaverequest

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-leave/internal/events"
	"go-leave/internal/leavebalance"
	leaverequesterrors "go-leave/internal/leaverequest/errors"
	"go-leave/internal/leavetype"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/shared/contextutil"
)

// TypeProvisioner resolves a leave type from a unit, creating the type on
// the fly when nothing is registered for that unit yet.
type TypeProvisioner interface {
	EnsureByUnit(ctx context.Context, unit string) (*leavetype.LeaveType, error)
}

//go:generate mockgen -source=leave_request_service.go -destination=mock/leave_request_service_mock.go -package=mock

type Service interface {
	Create(ctx context.Context, req CreateLeaveRequestRequest) (*LeaveRequestResponse, error)
	Review(ctx context.Context, requestID uuid.UUID, reviewerID string, req ReviewLeaveRequestRequest) (*LeaveRequestResponse, error)
	GetAll(ctx context.Context, filter ListFilter) ([]LeaveRequestResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*LeaveRequestResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	types  TypeProvisioner
	ledger leavebalance.Ledger
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, types TypeProvisioner, ledger leavebalance.Ledger, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, types, ledger, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	types TypeProvisioner,
	ledger leavebalance.Ledger,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leaverequest.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leaverequest.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		types:  types,
		ledger: ledger,
		outbox: outboxRepo,
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateLeaveRequestRequest) (*LeaveRequestResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if req.EmployeeID == "" {
		return nil, leaverequesterrors.ErrEmployeeRequired
	}
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return nil, leaverequesterrors.ErrEmployeeRequired
	}

	if !req.StartTime.Before(req.EndTime) {
		return nil, leaverequesterrors.ErrInvalidDateRange
	}

	lt, err := s.types.EnsureByUnit(ctx, req.Unit)
	if err != nil {
		s.logger.Error("create leave request resolve type failed",
			zap.String("request_id", rid),
			zap.String("unit", req.Unit),
			zap.Error(err),
		)
		return nil, err
	}

	overlap, err := s.repo.HasApprovedOverlap(ctx, employeeID, req.StartTime, req.EndTime)
	if err != nil {
		s.logger.Error("create leave request overlap check failed", zap.String("request_id", rid), zap.Error(err))
		return nil, err
	}
	if overlap {
		return nil, leaverequesterrors.ErrRequestOverlap
	}

	duration := ComputeDuration(req.StartTime, req.EndTime, lt.Unit)

	// Provisioning saldo di luar transaksi: kalau request gagal,
	// baris saldo yang baru dibuat tetap benar.
	balance, err := s.ledger.GetOrCreate(ctx, employeeID, lt.ID)
	if err != nil {
		s.logger.Error("create leave request load balance failed", zap.String("request_id", rid), zap.Error(err))
		return nil, err
	}

	needed := leavebalance.ConvertAmount(duration, lt.Unit, balance.BalanceUnit)
	if balance.BalanceAmount.LessThan(needed) {
		s.logger.Warn("create leave request insufficient balance",
			zap.String("request_id", rid),
			zap.String("employee_id", employeeID.String()),
			zap.String("needed", needed.String()),
			zap.String("available", balance.BalanceAmount.String()),
		)
		return nil, leaverequesterrors.ErrInsufficientBalance
	}

	lr := &LeaveRequest{
		ID:             uuid.New(),
		EmployeeID:     employeeID,
		LeaveTypeID:    lt.ID,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		DurationAmount: duration,
		DurationUnit:   lt.Unit,
		Reason:         req.Reason,
		Status:         StatusPending,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create leave request begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, lr); err != nil {
		s.logger.Error("create leave request persist failed", zap.String("request_id", rid), zap.Error(err))
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create leave request commit failed", zap.String("request_id", rid), zap.Error(err))
		return nil, err
	}

	s.logger.Info("leave request created",
		zap.String("request_id", rid),
		zap.String("leave_request_id", lr.ID.String()),
		zap.String("employee_id", employeeID.String()),
		zap.String("duration", duration.String()),
		zap.String("unit", lt.Unit),
	)

	resp := mapToResponse(lr)
	return &resp, nil
}

func (s *service) Review(ctx context.Context, requestID uuid.UUID, reviewerID string, req ReviewLeaveRequestRequest) (*LeaveRequestResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("review leave request begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	lr, err := qtx.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leaverequesterrors.ErrRequestNotFound
		}
		s.logger.Error("review leave request load failed", zap.String("request_id", rid), zap.Error(err))
		return nil, err
	}

	if lr.Status != StatusPending {
		return nil, leaverequesterrors.ErrNotReviewable
	}

	now := time.Now().UTC()
	lr.AdminComment = req.AdminComment
	lr.DecidedAt = &now
	if reviewer, err := uuid.Parse(reviewerID); err == nil {
		lr.DecidedBy = &reviewer
	}

	if req.Decision == DecisionApprove {
		lr.Status = StatusApproved
		if _, err := s.ledger.WithTx(tx).Debit(ctx, lr.EmployeeID, lr.LeaveTypeID, lr.DurationAmount, lr.DurationUnit); err != nil {
			s.logger.Error("review leave request debit failed",
				zap.String("request_id", rid),
				zap.String("leave_request_id", lr.ID.String()),
				zap.Error(err),
			)
			return nil, err
		}
	} else {
		lr.Status = StatusRejected
	}

	if err := qtx.Update(ctx, lr); err != nil {
		s.logger.Error("review leave request persist failed", zap.String("request_id", rid), zap.Error(err))
		return nil, err
	}

	if s.outbox != nil {
		if err := s.queueDecidedEvent(ctx, tx, rid, reviewerID, lr); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("review leave request commit failed", zap.String("request_id", rid), zap.Error(err))
		return nil, err
	}

	s.logger.Info("leave request reviewed",
		zap.String("request_id", rid),
		zap.String("leave_request_id", lr.ID.String()),
		zap.String("status", lr.Status),
	)

	resp := mapToResponse(lr)
	return &resp, nil
}

func (s *service) queueDecidedEvent(ctx context.Context, tx *sql.Tx, rid, reviewerID string, lr *LeaveRequest) error {
	eventType := events.EventTypeLeaveRequestRejected
	if lr.Status == StatusApproved {
		eventType = events.EventTypeLeaveRequestApproved
	}

	event := events.LeaveRequestDecidedEvent{
		EventType:      eventType,
		RequestID:      rid,
		LeaveRequestID: lr.ID.String(),
		EmployeeID:     lr.EmployeeID.String(),
		LeaveTypeID:    lr.LeaveTypeID.String(),
		Status:         lr.Status,
		DurationAmount: lr.DurationAmount,
		DurationUnit:   lr.DurationUnit,
		DecidedBy:      reviewerID,
		OccurredAt:     time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal decided event failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "leave_request",
		AggregateID:   lr.ID.String(),
		EventType:     eventType,
		Topic:         events.LeaveRequestDecidedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("review leave request outbox persist failed",
			zap.String("leave_request_id", lr.ID.String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]LeaveRequestResponse, error) {
	requests, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]LeaveRequestResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, mapToResponse(&requests[i]))
	}
	return responses, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*LeaveRequestResponse, error) {
	lr, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leaverequesterrors.ErrRequestNotFound
		}
		return nil, err
	}
	resp := mapToResponse(lr)
	return &resp, nil
}

func mapToResponse(lr *LeaveRequest) LeaveRequestResponse {
	var decidedBy *string
	if lr.DecidedBy != nil {
		v := lr.DecidedBy.String()
		decidedBy = &v
	}
	return LeaveRequestResponse{
		ID:             lr.ID.String(),
		EmployeeID:     lr.EmployeeID.String(),
		LeaveTypeID:    lr.LeaveTypeID.String(),
		StartTime:      lr.StartTime,
		EndTime:        lr.EndTime,
		DurationAmount: lr.DurationAmount,
		DurationUnit:   lr.DurationUnit,
		Reason:         lr.Reason,
		Status:         lr.Status,
		AdminComment:   lr.AdminComment,
		DecidedBy:      decidedBy,
		DecidedAt:      lr.DecidedAt,
		CreatedAt:      lr.CreatedAt,
		UpdatedAt:      lr.UpdatedAt,
	}
}
