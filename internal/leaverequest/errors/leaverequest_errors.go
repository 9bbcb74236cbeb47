package leaverequesterrors

import (
	"net/http"

	"go-shiftdesk/internal/shared/apperror"
)

var (
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave request not found",
		http.StatusNotFound,
	)
	ErrInvalidLeaveType = apperror.New(
		apperror.CodeInvalidInput,
		"Leave type must be one of: izin, cuti, sakit",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"Start date must not be after end date",
		http.StatusBadRequest,
	)
	ErrReasonTooShort = apperror.New(
		apperror.CodeInvalidInput,
		"Reason must be at least 3 characters",
		http.StatusBadRequest,
	)
	ErrLeadTimeDay = apperror.New(
		apperror.CodeInvalidInput,
		"Izin and sakit must be requested at least one day ahead",
		http.StatusBadRequest,
	)
	ErrLeadTimeWeek = apperror.New(
		apperror.CodeInvalidInput,
		"Cuti must be requested at least seven days ahead",
		http.StatusBadRequest,
	)
	ErrNotAllowedToDecide = apperror.New(
		apperror.CodeForbidden,
		"You are not allowed to decide this request",
		http.StatusForbidden,
	)
	ErrNotAllowedToCancel = apperror.New(
		apperror.CodeForbidden,
		"Only the requester can cancel this request",
		http.StatusForbidden,
	)
	ErrNotAllowedToDelete = apperror.New(
		apperror.CodeForbidden,
		"Only an admin can delete requests",
		http.StatusForbidden,
	)
	ErrAlreadyProcessed = apperror.New(
		apperror.CodeConflict,
		"Request has already been processed",
		http.StatusConflict,
	)
)
