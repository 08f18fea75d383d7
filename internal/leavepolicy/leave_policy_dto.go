package leavepolicy

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateLeavePolicyRequest struct {
	LeaveTypeID       string          `json:"leave_type_id" binding:"omitempty,uuid"`
	EntitlementAmount decimal.Decimal `json:"entitlement_amount" binding:"required"`
	EntitlementUnit   string          `json:"entitlement_unit" binding:"required,oneof=DAY HOUR"`
	RenewalPeriod     string          `json:"renewal_period" binding:"required,oneof=WEEKLY MONTHLY YEARLY"`
}

type UpdateLeavePolicyRequest struct {
	EntitlementAmount *decimal.Decimal `json:"entitlement_amount"`
	EntitlementUnit   *string          `json:"entitlement_unit" binding:"omitempty,oneof=DAY HOUR"`
	RenewalPeriod     *string          `json:"renewal_period" binding:"omitempty,oneof=WEEKLY MONTHLY YEARLY"`
}

type CreateEmployeeLeaveSettingRequest struct {
	EmployeeID              string           `json:"employee_id" binding:"required,uuid"`
	LeaveTypeID             string           `json:"leave_type_id" binding:"required,uuid"`
	CustomEntitlementAmount *decimal.Decimal `json:"custom_entitlement_amount" binding:"required"`
	CustomEntitlementUnit   *string          `json:"custom_entitlement_unit" binding:"omitempty,oneof=DAY HOUR"`
}

type LeavePolicyResponse struct {
	ID                string          `json:"id"`
	LeaveTypeID       *string         `json:"leave_type_id"`
	EntitlementAmount decimal.Decimal `json:"entitlement_amount"`
	EntitlementUnit   string          `json:"entitlement_unit"`
	RenewalPeriod     string          `json:"renewal_period"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

type EmployeeLeaveSettingResponse struct {
	ID                      string           `json:"id"`
	EmployeeID              string           `json:"employee_id"`
	LeaveTypeID             string           `json:"leave_type_id"`
	CustomEntitlementAmount *decimal.Decimal `json:"custom_entitlement_amount"`
	CustomEntitlementUnit   *string          `json:"custom_entitlement_unit"`
	CreatedAt               time.Time        `json:"created_at"`
	UpdatedAt               time.Time        `json:"updated_at"`
}
