package events

import (
	"time"

	"github.com/shopspring/decimal"
)

const LeaveRequestDecidedTopic = "leave.request.decided.v1"

const (
	EventTypeLeaveRequestApproved = "leave_request_approved"
	EventTypeLeaveRequestRejected = "leave_request_rejected"
)

type LeaveRequestDecidedEvent struct {
	EventType      string          `json:"event_type"`
	RequestID      string          `json:"request_id,omitempty"`
	LeaveRequestID string          `json:"leave_request_id"`
	EmployeeID     string          `json:"employee_id"`
	LeaveTypeID    string          `json:"leave_type_id"`
	Status         string          `json:"status"`
	DurationAmount decimal.Decimal `json:"duration_amount"`
	DurationUnit   string          `json:"duration_unit"`
	DecidedBy      string          `json:"decided_by"`
	OccurredAt     time.Time       `json:"occurred_at"`
}
