package address

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-giftstore-api/internal/pkg/apperror"
	"go-giftstore-api/internal/pkg/response"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func userFrom(ctx *gin.Context) string {
	return ctx.GetString("user_id")
}

func (h *Handler) List(ctx *gin.Context) {
	addresses, err := h.service.ListByUser(ctx, userFrom(ctx))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Addresses retrieved", addresses)
}

func (h *Handler) Default(ctx *gin.Context) {
	a, err := h.service.GetDefault(ctx, userFrom(ctx))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Default address retrieved", a)
}

func (h *Handler) Create(ctx *gin.Context) {
	var req SaveAddressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	a, err := h.service.Create(ctx, userFrom(ctx), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusCreated, "Address saved", a)
}

func (h *Handler) Update(ctx *gin.Context) {
	var req SaveAddressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	a, err := h.service.Update(ctx, userFrom(ctx), ctx.Param("id"), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Address updated", a)
}

func (h *Handler) Delete(ctx *gin.Context) {
	if err := h.service.Delete(ctx, userFrom(ctx), ctx.Param("id")); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Address deleted", nil)
}
