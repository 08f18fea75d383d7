package leavebalance

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-leave/internal/leavepolicy"
	"go-leave/internal/leavetype"
)

//go:generate mockgen -source=ledger.go -destination=mock/ledger_mock.go -package=mock

// Ledger owns every mutation of leave balances. Rows are provisioned lazily:
// the first read for an employee and leave type inserts the resolved
// entitlement. Debit and Credit convert into the unit the row is kept in and
// never refuse a mutation; balances are allowed to go negative.
type Ledger interface {
	WithTx(tx *sql.Tx) Ledger
	GetOrCreate(ctx context.Context, employeeID, leaveTypeID uuid.UUID) (*LeaveBalance, error)
	Debit(ctx context.Context, employeeID, leaveTypeID uuid.UUID, amount decimal.Decimal, unit string) (*LeaveBalance, error)
	Credit(ctx context.Context, employeeID, leaveTypeID uuid.UUID, amount decimal.Decimal, unit string) (*LeaveBalance, error)
}

type ledger struct {
	repo     Repository
	types    leavepolicy.TypeLookup
	resolver leavepolicy.Resolver
	logger   *zap.Logger
}

func NewLedger(repo Repository, types leavepolicy.TypeLookup, resolver leavepolicy.Resolver, logger ...*zap.Logger) Ledger {
	l := zap.L().Named("leavebalance.ledger")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &ledger{repo: repo, types: types, resolver: resolver, logger: l}
}

// WithTx rebinds balance writes to the transaction. Entitlement resolution
// stays on the base connection; it only reads configuration.
func (l *ledger) WithTx(tx *sql.Tx) Ledger {
	return &ledger{
		repo:     l.repo.WithTx(tx),
		types:    l.types,
		resolver: l.resolver,
		logger:   l.logger,
	}
}

func (l *ledger) GetOrCreate(ctx context.Context, employeeID, leaveTypeID uuid.UUID) (*LeaveBalance, error) {
	balance, err := l.repo.FindByEmployeeAndType(ctx, employeeID, leaveTypeID)
	if err == nil {
		return balance, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	ent, err := l.resolver.Resolve(ctx, employeeID, leaveTypeID)
	if errors.Is(err, leavepolicy.ErrPolicyMissing) {
		ent, err = l.defaultEntitlement(ctx, leaveTypeID)
	}
	if err != nil {
		return nil, err
	}

	balance = &LeaveBalance{
		EmployeeID:    employeeID,
		LeaveTypeID:   leaveTypeID,
		BalanceAmount: ent.Amount,
		BalanceUnit:   ent.Unit,
	}
	if err := l.repo.Create(ctx, balance); err != nil {
		if isUniqueBalanceViolation(err) {
			// Kalah race dengan provisioning lain: baca ulang saja.
			return l.repo.FindByEmployeeAndType(ctx, employeeID, leaveTypeID)
		}
		return nil, err
	}

	l.logger.Info("leave balance provisioned",
		zap.String("employee_id", employeeID.String()),
		zap.String("leave_type_id", leaveTypeID.String()),
		zap.String("amount", ent.Amount.String()),
		zap.String("unit", ent.Unit),
	)
	return balance, nil
}

func (l *ledger) Debit(ctx context.Context, employeeID, leaveTypeID uuid.UUID, amount decimal.Decimal, unit string) (*LeaveBalance, error) {
	return l.apply(ctx, employeeID, leaveTypeID, amount.Neg(), unit, "debit")
}

func (l *ledger) Credit(ctx context.Context, employeeID, leaveTypeID uuid.UUID, amount decimal.Decimal, unit string) (*LeaveBalance, error) {
	return l.apply(ctx, employeeID, leaveTypeID, amount, unit, "credit")
}

func (l *ledger) apply(ctx context.Context, employeeID, leaveTypeID uuid.UUID, delta decimal.Decimal, unit string, op string) (*LeaveBalance, error) {
	balance, err := l.GetOrCreate(ctx, employeeID, leaveTypeID)
	if err != nil {
		return nil, err
	}

	converted := ConvertAmount(delta, unit, balance.BalanceUnit)
	balance.BalanceAmount = balance.BalanceAmount.Add(converted)

	if err := l.repo.Update(ctx, balance); err != nil {
		return nil, err
	}

	l.logger.Info("leave balance updated",
		zap.String("op", op),
		zap.String("employee_id", employeeID.String()),
		zap.String("leave_type_id", leaveTypeID.String()),
		zap.String("delta", converted.String()),
		zap.String("balance", balance.BalanceAmount.String()),
	)
	return balance, nil
}

// defaultEntitlement covers employees that have neither a policy nor an
// override: 20 days for day-unit types, 40 hours for hour-unit types.
func (l *ledger) defaultEntitlement(ctx context.Context, leaveTypeID uuid.UUID) (leavepolicy.Entitlement, error) {
	lt, err := l.types.FindByID(ctx, leaveTypeID.String())
	if err != nil {
		return leavepolicy.Entitlement{}, err
	}
	if lt.Unit == leavetype.UnitHour {
		return leavepolicy.Entitlement{Amount: DefaultEntitlementHours, Unit: leavetype.UnitHour}, nil
	}
	return leavepolicy.Entitlement{Amount: DefaultEntitlementDays, Unit: leavetype.UnitDay}, nil
}

func isUniqueBalanceViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "uq_leave_balances"
	}
	return strings.Contains(err.Error(), "uq_leave_balances")
}
