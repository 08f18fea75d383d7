package leavebalance

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-leave/internal/leavetype"
)

// TypeProvisioner resolves a leave type from a unit, creating the type on
// the fly when nothing is registered for that unit yet.
type TypeProvisioner interface {
	EnsureByUnit(ctx context.Context, unit string) (*leavetype.LeaveType, error)
}

//go:generate mockgen -source=provisioner.go -destination=mock/provisioner_mock.go -package=mock

// Provisioner menyiapkan baris saldo untuk karyawan baru, dipakai consumer
// employee lifecycle supaya karyawan langsung punya saldo DAY dan HOUR.
type Provisioner interface {
	ProvisionForEmployee(ctx context.Context, employeeID uuid.UUID) error
}

type provisioner struct {
	types  TypeProvisioner
	ledger Ledger
	logger *zap.Logger
}

func NewProvisioner(types TypeProvisioner, ledger Ledger, logger ...*zap.Logger) Provisioner {
	l := zap.L().Named("leavebalance.provisioner")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &provisioner{types: types, ledger: ledger, logger: l}
}

// ProvisionForEmployee seeds one balance row per unit. GetOrCreate tolerates
// rows that already exist, so replaying the same event is harmless.
func (p *provisioner) ProvisionForEmployee(ctx context.Context, employeeID uuid.UUID) error {
	for _, unit := range []string{leavetype.UnitDay, leavetype.UnitHour} {
		lt, err := p.types.EnsureByUnit(ctx, unit)
		if err != nil {
			return err
		}

		balance, err := p.ledger.GetOrCreate(ctx, employeeID, lt.ID)
		if err != nil {
			return err
		}

		p.logger.Info("leave balance provisioned",
			zap.String("employee_id", employeeID.String()),
			zap.String("leave_type_id", lt.ID.String()),
			zap.String("balance_amount", balance.BalanceAmount.String()),
			zap.String("balance_unit", balance.BalanceUnit),
		)
	}

	return nil
}
