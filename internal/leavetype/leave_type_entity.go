package leavetype

import (
	"time"

	"github.com/google/uuid"
)

const (
	UnitDay  = "DAY"
	UnitHour = "HOUR"
)

// LeaveType is keyed by unit: the unique index keeps at most one DAY and one
// HOUR type, and the workflow resolves types by unit.
type LeaveType struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Unit        string    `gorm:"type:varchar(10);not null;uniqueIndex:uq_leave_types_unit"`
	IsSickLeave bool      `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func ValidUnit(unit string) bool {
	return unit == UnitDay || unit == UnitHour
}

// DefaultNameForUnit is used when the workflow provisions a type on the fly.
func DefaultNameForUnit(unit string) string {
	if unit == UnitHour {
		return "Hourly Leave"
	}
	return "Daily Leave"
}
