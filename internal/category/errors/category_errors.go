package categoryerrors

import (
	"net/http"

	"go-giftstore-api/internal/pkg/apperror"
)

var (
	ErrCategoryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Category not found",
		http.StatusNotFound,
	)

	ErrInvalidCategory = apperror.New(
		apperror.CodeInvalidInput,
		"Category name and slug are required",
		http.StatusBadRequest,
	)
)
