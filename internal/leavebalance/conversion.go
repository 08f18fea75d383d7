package leavebalance

import (
	"github.com/shopspring/decimal"

	"go-leave/internal/leavetype"
)

// HoursPerDay is the fixed working-day length used whenever a request unit
// differs from the unit a balance row is kept in.
var HoursPerDay = decimal.NewFromInt(8)

// Provisioning fallbacks for employees with no policy and no override.
var (
	DefaultEntitlementDays  = decimal.NewFromInt(20)
	DefaultEntitlementHours = decimal.NewFromInt(40)
)

// ConvertAmount moves an amount between DAY and HOUR. Division by eight is
// exact in base ten, so converting the same amount twice lands on the same
// decimal and a credit undoes its debit without drift.
func ConvertAmount(amount decimal.Decimal, fromUnit, toUnit string) decimal.Decimal {
	if fromUnit == toUnit {
		return amount
	}
	if fromUnit == leavetype.UnitHour && toUnit == leavetype.UnitDay {
		return amount.Div(HoursPerDay)
	}
	return amount.Mul(HoursPerDay)
}
