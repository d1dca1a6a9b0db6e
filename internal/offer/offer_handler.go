package offer

import (
	"net/http"
	"strconv"

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
	offers, err := h.service.List(ctx)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Offers retrieved", offers)
}

func (h *Handler) Applicable(ctx *gin.Context) {
	total, err := strconv.ParseFloat(ctx.Query("total"), 64)
	if err != nil || total < 0 {
		response.Error(ctx, http.StatusBadRequest, apperror.CodeInvalidInput, "Query parameter 'total' must be a non-negative number", nil)
		return
	}

	res, err := h.service.Applicable(ctx, total)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Applicable offers retrieved", res)
}

func (h *Handler) Create(ctx *gin.Context) {
	var req SaveOfferRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	o, err := h.service.Create(ctx, req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusCreated, "Offer created", o)
}

func (h *Handler) Update(ctx *gin.Context) {
	var req SaveOfferRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	o, err := h.service.Update(ctx, ctx.Param("id"), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Offer updated", o)
}

func (h *Handler) Delete(ctx *gin.Context) {
	if err := h.service.Delete(ctx, ctx.Param("id")); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Offer deleted", nil)
}
