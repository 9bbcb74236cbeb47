package scheduleerrors

import (
	"net/http"

	"go-shiftdesk/internal/shared/apperror"
)

var (
	ErrEntryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Schedule entry not found",
		http.StatusNotFound,
	)
	ErrNoShiftScheduled = apperror.New(
		apperror.CodeInvalidState,
		"No shift scheduled on that date",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid month format, expected YYYY-MM",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrEngineUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"Schedule engine is unavailable",
		http.StatusServiceUnavailable,
	)
)
