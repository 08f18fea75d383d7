package leaverequest

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateLeaveRequestRequest files leave for an employee. employee_id is
// optional; when absent the authenticated employee is used.
type CreateLeaveRequestRequest struct {
	EmployeeID string    `json:"employee_id" binding:"omitempty,uuid"`
	Unit       string    `json:"unit" binding:"required,oneof=DAY HOUR"`
	StartTime  time.Time `json:"start_time" binding:"required"`
	EndTime    time.Time `json:"end_time" binding:"required"`
	Reason     string    `json:"reason" binding:"required,max=255"`
}

type ReviewLeaveRequestRequest struct {
	Decision     string  `json:"decision" binding:"required,oneof=APPROVE REJECT"`
	AdminComment *string `json:"admin_comment" binding:"omitempty,max=255"`
}

type LeaveRequestResponse struct {
	ID             string          `json:"id"`
	EmployeeID     string          `json:"employee_id"`
	LeaveTypeID    string          `json:"leave_type_id"`
	StartTime      time.Time       `json:"start_time"`
	EndTime        time.Time       `json:"end_time"`
	DurationAmount decimal.Decimal `json:"duration_amount"`
	DurationUnit   string          `json:"duration_unit"`
	Reason         string          `json:"reason"`
	Status         string          `json:"status"`
	AdminComment   *string         `json:"admin_comment"`
	DecidedBy      *string         `json:"decided_by"`
	DecidedAt      *time.Time      `json:"decided_at"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
