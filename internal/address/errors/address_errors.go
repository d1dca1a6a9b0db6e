package addresserrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"go-giftstore-api/internal/pkg/apperror"
)

var (
	ErrAddressNotFound = apperror.New(
		apperror.CodeNotFound,
		"Address not found",
		http.StatusNotFound,
	)

	ErrAddressForbidden = apperror.New(
		apperror.CodeForbidden,
		"Address belongs to a different user",
		http.StatusForbidden,
	)

	ErrAreaNotServiceable = apperror.New(
		apperror.CodeInvalidInput,
		"We do not deliver to this pincode yet",
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
