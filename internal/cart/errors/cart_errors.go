package carterrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"go-giftstore-api/internal/pkg/apperror"
)

var (
	ErrSessionRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Cart session id is required",
		http.StatusBadRequest,
	)

	ErrUserRequired = apperror.New(
		apperror.CodeUnauthorized,
		"Authenticated user is required",
		http.StatusUnauthorized,
	)

	ErrInvalidQty = apperror.New(
		apperror.CodeInvalidInput,
		"Quantity must be at least 1",
		http.StatusBadRequest,
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
