package areaerrors

import (
	"net/http"

	"go-giftstore-api/internal/pkg/apperror"
)

var (
	ErrAreaNotFound = apperror.New(
		apperror.CodeNotFound,
		"Area not found",
		http.StatusNotFound,
	)

	ErrInvalidPincode = apperror.New(
		apperror.CodeInvalidInput,
		"Pincode must be a 6-digit code",
		http.StatusBadRequest,
	)
)
