package leavepolicy

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-leave/internal/leavetype"
)

// ErrPolicyMissing reports that no entitlement source answered for the
// employee and leave type. Callers decide the fallback; the error never
// reaches an HTTP response.
var ErrPolicyMissing = errors.New("leavepolicy: no entitlement configured")

// Entitlement is a resolved amount in the unit of whichever source answered.
// No unit conversion happens here.
type Entitlement struct {
	Amount decimal.Decimal
	Unit   string
}

// TypeLookup is the slice of the leave type store the resolver needs when an
// employee override carries no unit of its own.
type TypeLookup interface {
	FindByID(ctx context.Context, id string) (*leavetype.LeaveType, error)
}

type Resolver interface {
	Resolve(ctx context.Context, employeeID, leaveTypeID uuid.UUID) (Entitlement, error)
}

type resolver struct {
	repo   Repository
	types  TypeLookup
	logger *zap.Logger
}

func NewResolver(repo Repository, types TypeLookup, logger ...*zap.Logger) Resolver {
	l := zap.L().Named("leavepolicy.resolver")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &resolver{repo: repo, types: types, logger: l}
}

// entitlementSource returns nil when it has no answer so the next source in
// the chain gets a turn. Only real failures abort the chain.
type entitlementSource func(ctx context.Context, employeeID, leaveTypeID uuid.UUID) (*Entitlement, error)

func (r *resolver) Resolve(ctx context.Context, employeeID, leaveTypeID uuid.UUID) (Entitlement, error) {
	// Urutan menentukan prioritas: setting per karyawan dulu, baru policy.
	sources := []entitlementSource{
		r.fromEmployeeSetting,
		r.fromPolicy,
	}

	for _, source := range sources {
		ent, err := source(ctx, employeeID, leaveTypeID)
		if err != nil {
			return Entitlement{}, err
		}
		if ent != nil {
			return *ent, nil
		}
	}

	r.logger.Debug("no entitlement source answered",
		zap.String("employee_id", employeeID.String()),
		zap.String("leave_type_id", leaveTypeID.String()),
	)
	return Entitlement{}, ErrPolicyMissing
}

func (r *resolver) fromEmployeeSetting(ctx context.Context, employeeID, leaveTypeID uuid.UUID) (*Entitlement, error) {
	setting, err := r.repo.FindSettingByEmployeeAndType(ctx, employeeID, leaveTypeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if setting.CustomEntitlementAmount == nil {
		return nil, nil
	}

	unit := ""
	if setting.CustomEntitlementUnit != nil {
		unit = *setting.CustomEntitlementUnit
	}
	if unit == "" {
		lt, err := r.types.FindByID(ctx, leaveTypeID.String())
		if err != nil {
			return nil, err
		}
		unit = lt.Unit
	}

	return &Entitlement{Amount: *setting.CustomEntitlementAmount, Unit: unit}, nil
}

func (r *resolver) fromPolicy(ctx context.Context, employeeID, leaveTypeID uuid.UUID) (*Entitlement, error) {
	policy, err := r.repo.FindPolicyByType(ctx, leaveTypeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &Entitlement{Amount: policy.EntitlementAmount, Unit: policy.EntitlementUnit}, nil
}
