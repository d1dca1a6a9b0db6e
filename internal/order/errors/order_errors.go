package ordererrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"go-giftstore-api/internal/pkg/apperror"
)

var (
	ErrOrderNotFound = apperror.New(
		apperror.CodeNotFound,
		"Order not found",
		http.StatusNotFound,
	)

	ErrOrderForbidden = apperror.New(
		apperror.CodeForbidden,
		"Order belongs to a different user",
		http.StatusForbidden,
	)

	ErrEmptyCart = apperror.New(
		apperror.CodeInvalidInput,
		"Cannot checkout an empty cart",
		http.StatusBadRequest,
	)

	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown delivery status",
		http.StatusBadRequest,
	)

	ErrInvalidTransition = apperror.New(
		apperror.CodeConflict,
		"Delivery status cannot move to the requested state",
		http.StatusConflict,
	)
)

// MapValidationError turns validator output into a client-facing AppError.
func MapValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperror.New(apperror.CodeInvalidInput, "Invalid input", http.StatusBadRequest)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, strings.ToLower(fe.Field()))
	}

	return apperror.New(
		apperror.CodeInvalidInput,
		fmt.Sprintf("Invalid value for: %s", strings.Join(fields, ", ")),
		http.StatusBadRequest,
	)
}
