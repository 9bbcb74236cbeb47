package storeerrors

import (
	"net/http"

	"go-shiftdesk/internal/shared/apperror"
)

var (
	ErrStoreNotFound = apperror.New(
		apperror.CodeNotFound,
		"Store not found",
		http.StatusNotFound,
	)
	ErrStoreCodeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Store code already exists",
		http.StatusConflict,
	)
	ErrInvalidStoreID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid store ID",
		http.StatusBadRequest,
	)
)
