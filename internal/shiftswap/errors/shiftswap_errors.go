package shiftswaperrors

import (
	"net/http"

	"go-shiftdesk/internal/shared/apperror"
)

var (
	ErrSwapNotFound = apperror.New(
		apperror.CodeNotFound,
		"Swap request not found",
		http.StatusNotFound,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrSwapDateTooSoon = apperror.New(
		apperror.CodeInvalidInput,
		"Swap must be requested at least one day ahead",
		http.StatusBadRequest,
	)
	ErrReasonTooShort = apperror.New(
		apperror.CodeInvalidInput,
		"Reason must be at least 3 characters",
		http.StatusBadRequest,
	)
	ErrPartnerIsRequester = apperror.New(
		apperror.CodeInvalidInput,
		"Partner must be a different employee",
		http.StatusBadRequest,
	)
	ErrInvalidResponse = apperror.New(
		apperror.CodeInvalidInput,
		"Response must be accept or decline",
		http.StatusBadRequest,
	)
	ErrNoShiftOnDate = apperror.New(
		apperror.CodeInvalidState,
		"Both employees must have a shift scheduled on the swap date",
		http.StatusUnprocessableEntity,
	)
	ErrPartnerNotAccepted = apperror.New(
		apperror.CodeInvalidState,
		"Partner has not accepted the swap yet",
		http.StatusUnprocessableEntity,
	)
	ErrNotThePartner = apperror.New(
		apperror.CodeForbidden,
		"Only the requested partner can respond to this swap",
		http.StatusForbidden,
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
