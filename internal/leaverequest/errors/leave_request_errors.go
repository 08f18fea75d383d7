package leaverequesterrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrInvalidDateRange = apperror.New(apperror.CodeInvalidInput, "Start time must be before end time", http.StatusBadRequest)

	ErrRequestNotFound = apperror.New(apperror.CodeNotFound, "Leave request not found", http.StatusNotFound)

	ErrEmployeeRequired = apperror.New(apperror.CodeInvalidInput, "Employee is required", http.StatusBadRequest)

	// Overlap dicek hanya terhadap pengajuan yang sudah APPROVED.
	ErrRequestOverlap = apperror.New(apperror.CodeConflict, "The requested period overlaps an approved leave", http.StatusConflict)

	ErrInsufficientBalance = apperror.New(apperror.CodeUnprocessable, "Insufficient leave balance for the requested duration", http.StatusUnprocessableEntity)

	ErrNotReviewable = apperror.New(apperror.CodeInvalidState, "Only pending requests can be reviewed", http.StatusConflict)
)
