package leavepolicy

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"

	leavepolicyerrors "go-leave/internal/leavepolicy/errors"
)

//go:generate mockgen -source=leave_policy_service.go -destination=mock/leave_policy_service_mock.go -package=mock

type Service interface {
	CreatePolicy(ctx context.Context, req CreateLeavePolicyRequest) (*LeavePolicyResponse, error)
	GetAllPolicies(ctx context.Context) ([]LeavePolicyResponse, error)
	GetPolicyByID(ctx context.Context, id uuid.UUID) (*LeavePolicyResponse, error)
	UpdatePolicy(ctx context.Context, id uuid.UUID, req UpdateLeavePolicyRequest) (*LeavePolicyResponse, error)

	CreateSetting(ctx context.Context, req CreateEmployeeLeaveSettingRequest) (*EmployeeLeaveSettingResponse, error)
	GetSettingsByEmployee(ctx context.Context, employeeID uuid.UUID) ([]EmployeeLeaveSettingResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	types  TypeLookup
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, types TypeLookup, logger ...*zap.Logger) Service {
	l := zap.L().Named("leavepolicy.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{db: db, repo: repo, types: types, logger: l}
}

func (s *service) CreatePolicy(ctx context.Context, req CreateLeavePolicyRequest) (*LeavePolicyResponse, error) {
	if !req.EntitlementAmount.IsPositive() {
		return nil, leavepolicyerrors.ErrInvalidEntitlement
	}

	policy := &LeavePolicy{
		EntitlementAmount: req.EntitlementAmount,
		EntitlementUnit:   req.EntitlementUnit,
		RenewalPeriod:     req.RenewalPeriod,
	}

	if req.LeaveTypeID != "" {
		typeID, err := uuid.Parse(req.LeaveTypeID)
		if err != nil {
			return nil, leavepolicyerrors.ErrLeaveTypeNotFound
		}
		if _, err := s.types.FindByID(ctx, typeID.String()); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, leavepolicyerrors.ErrLeaveTypeNotFound
			}
			return nil, err
		}
		policy.LeaveTypeID = &typeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).CreatePolicy(ctx, policy); err != nil {
		if isUniqueViolation(err, "uq_leave_policies_type") {
			return nil, leavepolicyerrors.ErrPolicyAlreadyExists
		}
		s.logger.Error("failed to create leave policy", zap.Error(err))
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("leave policy created",
		zap.String("policy_id", policy.ID.String()),
		zap.String("unit", policy.EntitlementUnit),
	)
	resp := mapPolicyToResponse(policy)
	return &resp, nil
}

func (s *service) GetAllPolicies(ctx context.Context) ([]LeavePolicyResponse, error) {
	policies, err := s.repo.FindAllPolicies(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]LeavePolicyResponse, 0, len(policies))
	for i := range policies {
		responses = append(responses, mapPolicyToResponse(&policies[i]))
	}
	return responses, nil
}

func (s *service) GetPolicyByID(ctx context.Context, id uuid.UUID) (*LeavePolicyResponse, error) {
	policy, err := s.repo.FindPolicyByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leavepolicyerrors.ErrPolicyNotFound
		}
		return nil, err
	}
	resp := mapPolicyToResponse(policy)
	return &resp, nil
}

func (s *service) UpdatePolicy(ctx context.Context, id uuid.UUID, req UpdateLeavePolicyRequest) (*LeavePolicyResponse, error) {
	policy, err := s.repo.FindPolicyByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leavepolicyerrors.ErrPolicyNotFound
		}
		return nil, err
	}

	if req.EntitlementAmount != nil {
		if !req.EntitlementAmount.IsPositive() {
			return nil, leavepolicyerrors.ErrInvalidEntitlement
		}
		policy.EntitlementAmount = *req.EntitlementAmount
	}
	if req.EntitlementUnit != nil {
		policy.EntitlementUnit = *req.EntitlementUnit
	}
	if req.RenewalPeriod != nil {
		policy.RenewalPeriod = *req.RenewalPeriod
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).UpdatePolicy(ctx, policy); err != nil {
		s.logger.Error("failed to update leave policy", zap.Error(err))
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	resp := mapPolicyToResponse(policy)
	return &resp, nil
}

func (s *service) CreateSetting(ctx context.Context, req CreateEmployeeLeaveSettingRequest) (*EmployeeLeaveSettingResponse, error) {
	if req.CustomEntitlementAmount != nil && !req.CustomEntitlementAmount.IsPositive() {
		return nil, leavepolicyerrors.ErrInvalidEntitlement
	}

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return nil, leavepolicyerrors.ErrSettingNotFound
	}
	typeID, err := uuid.Parse(req.LeaveTypeID)
	if err != nil {
		return nil, leavepolicyerrors.ErrLeaveTypeNotFound
	}
	if _, err := s.types.FindByID(ctx, typeID.String()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leavepolicyerrors.ErrLeaveTypeNotFound
		}
		return nil, err
	}

	setting := &EmployeeLeaveSetting{
		EmployeeID:              employeeID,
		LeaveTypeID:             typeID,
		CustomEntitlementAmount: req.CustomEntitlementAmount,
		CustomEntitlementUnit:   req.CustomEntitlementUnit,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).CreateSetting(ctx, setting); err != nil {
		if isUniqueViolation(err, "uq_employee_leave_settings") {
			return nil, leavepolicyerrors.ErrSettingAlreadyExists
		}
		s.logger.Error("failed to create employee leave setting", zap.Error(err))
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("employee leave setting created",
		zap.String("employee_id", employeeID.String()),
		zap.String("leave_type_id", typeID.String()),
	)
	resp := mapSettingToResponse(setting)
	return &resp, nil
}

func (s *service) GetSettingsByEmployee(ctx context.Context, employeeID uuid.UUID) ([]EmployeeLeaveSettingResponse, error) {
	settings, err := s.repo.FindSettingsByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]EmployeeLeaveSettingResponse, 0, len(settings))
	for i := range settings {
		responses = append(responses, mapSettingToResponse(&settings[i]))
	}
	return responses, nil
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == constraint
	}
	return strings.Contains(err.Error(), constraint)
}

func mapPolicyToResponse(policy *LeavePolicy) LeavePolicyResponse {
	var typeID *string
	if policy.LeaveTypeID != nil {
		v := policy.LeaveTypeID.String()
		typeID = &v
	}
	return LeavePolicyResponse{
		ID:                policy.ID.String(),
		LeaveTypeID:       typeID,
		EntitlementAmount: policy.EntitlementAmount,
		EntitlementUnit:   policy.EntitlementUnit,
		RenewalPeriod:     policy.RenewalPeriod,
		CreatedAt:         policy.CreatedAt,
		UpdatedAt:         policy.UpdatedAt,
	}
}

func mapSettingToResponse(setting *EmployeeLeaveSetting) EmployeeLeaveSettingResponse {
	return EmployeeLeaveSettingResponse{
		ID:                      setting.ID.String(),
		EmployeeID:              setting.EmployeeID.String(),
		LeaveTypeID:             setting.LeaveTypeID.String(),
		CustomEntitlementAmount: setting.CustomEntitlementAmount,
		CustomEntitlementUnit:   setting.CustomEntitlementUnit,
		CreatedAt:               setting.CreatedAt,
		UpdatedAt:               setting.UpdatedAt,
	}
}
