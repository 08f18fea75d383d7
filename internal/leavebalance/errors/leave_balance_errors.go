package leavebalanceerrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	// Penyesuaian nol tidak punya arti, tolak di depan.
	ErrInvalidAdjustment = apperror.New(apperror.CodeInvalidInput, "Adjustment amount must not be zero", http.StatusBadRequest)

	ErrLeaveTypeNotFound = apperror.New(apperror.CodeNotFound, "Leave type not found", http.StatusNotFound)
)
