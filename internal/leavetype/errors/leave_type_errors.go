package leavetypeerrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrInvalidUnit = apperror.New(
		apperror.CodeInvalidInput,
		"unit must be DAY or HOUR",
		http.StatusBadRequest,
	)
	ErrLeaveTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave type not found",
		http.StatusNotFound,
	)
	ErrUnitAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"a leave type with this unit already exists",
		http.StatusConflict,
	)
)
