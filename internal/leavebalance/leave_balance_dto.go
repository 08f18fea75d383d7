package leavebalance

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdjustBalanceRequest moves a balance by a signed amount. Positive credits,
// negative debits.
type AdjustBalanceRequest struct {
	EmployeeID  string          `json:"employee_id" binding:"required,uuid"`
	LeaveTypeID string          `json:"leave_type_id" binding:"required,uuid"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Unit        string          `json:"unit" binding:"required,oneof=DAY HOUR"`
	Reason      string          `json:"reason" binding:"required,max=255"`
}

type LeaveBalanceResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	LeaveTypeID   string          `json:"leave_type_id"`
	BalanceAmount decimal.Decimal `json:"balance_amount"`
	BalanceUnit   string          `json:"balance_unit"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
