package leavepolicy

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	RenewalWeekly  = "WEEKLY"
	RenewalMonthly = "MONTHLY"
	RenewalYearly  = "YEARLY"
)

// LeavePolicy holds the org-wide entitlement for a leave type. At most one
// policy per type; leave_type_id may be null for a policy that is not bound
// to any provisioned type yet.
type LeavePolicy struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LeaveTypeID       *uuid.UUID      `gorm:"type:uuid;uniqueIndex:uq_leave_policies_type"`
	EntitlementAmount decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	EntitlementUnit   string          `gorm:"type:varchar(10);not null"`
	RenewalPeriod     string          `gorm:"type:varchar(10);not null;default:'YEARLY'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EmployeeLeaveSetting overrides the policy entitlement for one employee.
// A row with a nil amount is inert and does not answer resolution.
type EmployeeLeaveSetting struct {
	ID                      uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID              uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:uq_employee_leave_settings"`
	LeaveTypeID             uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:uq_employee_leave_settings"`
	CustomEntitlementAmount *decimal.Decimal `gorm:"type:numeric(12,2)"`
	CustomEntitlementUnit   *string          `gorm:"type:varchar(10)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func ValidRenewalPeriod(period string) bool {
	switch period {
	case RenewalWeekly, RenewalMonthly, RenewalYearly:
		return true
	default:
		return false
	}
}
