package area

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

func (h *Handler) List(ctx *gin.Context) {
	areas, err := h.service.List(ctx)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Areas retrieved", areas)
}

func (h *Handler) CheckPincode(ctx *gin.Context) {
	res, err := h.service.CheckPincode(ctx, ctx.Param("pincode"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Pincode checked", res)
}

func (h *Handler) Create(ctx *gin.Context) {
	var req AreaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	a, err := h.service.Create(ctx, req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusCreated, "Area created", a)
}

func (h *Handler) Update(ctx *gin.Context) {
	var req AreaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	a, err := h.service.Update(ctx, ctx.Param("id"), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Area updated", a)
}

func (h *Handler) Delete(ctx *gin.Context) {
	if err := h.service.Delete(ctx, ctx.Param("id")); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Area deleted", nil)
}
