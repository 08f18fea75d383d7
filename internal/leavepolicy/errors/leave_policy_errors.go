package leavepolicyerrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrPolicyNotFound = apperror.New(apperror.CodeNotFound, "Leave policy not found", http.StatusNotFound)

	ErrSettingNotFound = apperror.New(apperror.CodeNotFound, "Employee leave setting not found", http.StatusNotFound)

	// Satu leave type hanya boleh punya satu policy.
	ErrPolicyAlreadyExists = apperror.New(apperror.CodeConflict, "A policy already exists for this leave type", http.StatusConflict)

	ErrSettingAlreadyExists = apperror.New(apperror.CodeConflict, "A leave setting already exists for this employee and leave type", http.StatusConflict)

	ErrInvalidEntitlement = apperror.New(apperror.CodeInvalidInput, "Entitlement amount must be greater than zero", http.StatusBadRequest)

	ErrLeaveTypeNotFound = apperror.New(apperror.CodeNotFound, "Leave type not found", http.StatusNotFound)
)
