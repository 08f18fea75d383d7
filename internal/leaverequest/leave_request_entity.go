package leaverequest

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

const (
	DecisionApprove = "APPROVE"
	DecisionReject  = "REJECT"
)

// LeaveRequest records one request in the unit it was filed in.
// duration_unit always matches the leave type's unit at creation time.
type LeaveRequest struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_leave_requests_employee_status,priority:1"`
	LeaveTypeID    uuid.UUID       `gorm:"type:uuid;not null"`
	StartTime      time.Time       `gorm:"not null"`
	EndTime        time.Time       `gorm:"not null"`
	DurationAmount decimal.Decimal `gorm:"type:numeric;not null"`
	DurationUnit   string          `gorm:"type:varchar(10);not null"`
	Reason         string          `gorm:"type:varchar(255);not null"`
	Status         string          `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_leave_requests_employee_status,priority:2"`
	AdminComment   *string         `gorm:"type:varchar(255)"`
	DecidedBy      *uuid.UUID      `gorm:"type:uuid"`
	DecidedAt      *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}
