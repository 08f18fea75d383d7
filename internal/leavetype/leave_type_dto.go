package leavetype

type CreateLeaveTypeRequest struct {
	Name        string `json:"name" binding:"required"`
	Unit        string `json:"unit" binding:"required,oneof=DAY HOUR"`
	IsSickLeave bool   `json:"is_sick_leave"`
}

type LeaveTypeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Unit        string `json:"unit"`
	IsSickLeave bool   `json:"is_sick_leave"`
}
