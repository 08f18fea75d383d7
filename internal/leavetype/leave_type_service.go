package leavetype

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	leavetypeerrors "go-leave/internal/leavetype/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_type_service.go -destination=mock/leave_type_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error)
	GetAll(ctx context.Context) ([]LeaveTypeResponse, error)
	GetByID(ctx context.Context, id string) (LeaveTypeResponse, error)
	// EnsureByUnit returns the type for a unit, provisioning one with a
	// default name when none exists yet.
	EnsureByUnit(ctx context.Context, unit string) (*LeaveType, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leavetype.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavetype.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error) {
	s.logger.Debug("create leave type requested",
		zap.String("name", req.Name),
		zap.String("unit", req.Unit),
	)

	if !ValidUnit(req.Unit) {
		return LeaveTypeResponse{}, leavetypeerrors.ErrInvalidUnit
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create leave type begin tx failed", zap.Error(err))
		return LeaveTypeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	lt := &LeaveType{
		ID:          uuid.New(),
		Name:        req.Name,
		Unit:        req.Unit,
		IsSickLeave: req.IsSickLeave,
	}
	if err := qtx.Create(ctx, lt); err != nil {
		if isUniqueUnitViolation(err) {
			return LeaveTypeResponse{}, leavetypeerrors.ErrUnitAlreadyExists
		}
		s.logger.Error("create leave type persist failed", zap.Error(err))
		return LeaveTypeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create leave type commit failed", zap.Error(err))
		return LeaveTypeResponse{}, err
	}

	s.logger.Info("create leave type success",
		zap.String("leave_type_id", lt.ID.String()),
		zap.String("unit", lt.Unit),
	)

	return mapToResponse(*lt), nil
}

func (s *service) GetAll(ctx context.Context) ([]LeaveTypeResponse, error) {
	types, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all leave types failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(types), nil
}

func (s *service) GetByID(ctx context.Context, id string) (LeaveTypeResponse, error) {
	lt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveTypeResponse{}, leavetypeerrors.ErrLeaveTypeNotFound
		}
		return LeaveTypeResponse{}, err
	}
	return mapToResponse(*lt), nil
}

func (s *service) EnsureByUnit(ctx context.Context, unit string) (*LeaveType, error) {
	if !ValidUnit(unit) {
		return nil, leavetypeerrors.ErrInvalidUnit
	}

	lt, err := s.repo.FindByUnit(ctx, unit)
	if err == nil {
		return lt, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := &LeaveType{
		ID:   uuid.New(),
		Name: DefaultNameForUnit(unit),
		Unit: unit,
	}
	if err := s.repo.Create(ctx, created); err != nil {
		// Kalah race dengan provisioning lain: baca ulang saja
		if isUniqueUnitViolation(err) {
			return s.repo.FindByUnit(ctx, unit)
		}
		s.logger.Error("ensure leave type persist failed",
			zap.String("unit", unit),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("leave type provisioned for unit",
		zap.String("leave_type_id", created.ID.String()),
		zap.String("unit", unit),
	)
	return created, nil
}

func isUniqueUnitViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "uq_leave_types_unit"
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_leave_types_unit")
}

func mapToResponse(lt LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:          lt.ID.String(),
		Name:        lt.Name,
		Unit:        lt.Unit,
		IsSickLeave: lt.IsSickLeave,
	}
}

func mapToListResponse(types []LeaveType) []LeaveTypeResponse {
	resp := make([]LeaveTypeResponse, len(types))
	for i, lt := range types {
		resp[i] = mapToResponse(lt)
	}
	return resp
}
