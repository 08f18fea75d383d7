package leavebalance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LeaveBalance is one row per employee and leave type. balance_amount is an
// unconstrained numeric: debits arrive in either unit and conversion must
// survive the round trip without the column rounding underneath us.
type LeaveBalance struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_leave_balances"`
	LeaveTypeID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_leave_balances"`
	BalanceAmount decimal.Decimal `gorm:"type:numeric;not null"`
	BalanceUnit   string          `gorm:"type:varchar(10);not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
