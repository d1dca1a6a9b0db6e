package producterrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"go-giftstore-api/internal/pkg/apperror"
)

var (
	ErrProductNotFound = apperror.New(
		apperror.CodeNotFound,
		"Product not found",
		http.StatusNotFound,
	)

	ErrInvalidProductID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid product id",
		http.StatusBadRequest,
	)

	ErrInvalidPrice = apperror.New(
		apperror.CodeInvalidInput,
		"Product price must not be negative",
		http.StatusBadRequest,
	)

	ErrImageUploadFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to upload product image",
		http.StatusInternalServerError,
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
