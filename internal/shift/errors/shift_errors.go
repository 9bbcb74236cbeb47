package shifterrors

import (
	"net/http"

	"go-shiftdesk/internal/shared/apperror"
)

var (
	ErrShiftNotFound = apperror.New(
		apperror.CodeNotFound,
		"Shift not found",
		http.StatusNotFound,
	)
	ErrShiftCodeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Shift code already exists in this store",
		http.StatusConflict,
	)
	ErrInvalidTimeFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid time format, expected HH:MM",
		http.StatusBadRequest,
	)
	ErrInvalidGenderRestriction = apperror.New(
		apperror.CodeInvalidInput,
		"Gender restriction must be male, female, or empty",
		http.StatusBadRequest,
	)
)
