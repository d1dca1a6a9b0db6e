package order

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-giftstore-api/internal/cart"
	"go-giftstore-api/internal/pkg/apperror"
	"go-giftstore-api/internal/pkg/response"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func sessionFrom(ctx *gin.Context) cart.Session {
	return cart.Session{
		SessionID: ctx.GetString("session_id"),
		UserID:    ctx.GetString("user_id"),
	}
}

func (h *Handler) Checkout(ctx *gin.Context) {
	var req CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	res, err := h.service.Checkout(ctx, sessionFrom(ctx), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusCreated, "Order placed", res)
}

func (h *Handler) History(ctx *gin.Context) {
	orders, err := h.service.History(ctx, ctx.GetString("user_id"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Orders retrieved", orders)
}

func (h *Handler) Detail(ctx *gin.Context) {
	o, err := h.service.Detail(ctx, ctx.GetString("user_id"), ctx.Param("id"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Order retrieved", o)
}

func (h *Handler) ListAdmin(ctx *gin.Context) {
	q := ListOrdersQuery{
		Status: ctx.Query("status"),
		Page:   intQuery(ctx, "page"),
		Limit:  intQuery(ctx, "limit"),
	}

	res, err := h.service.ListAdmin(ctx, q)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Orders retrieved", res)
}

func (h *Handler) UpdateStatus(ctx *gin.Context) {
	var req UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	o, err := h.service.UpdateStatus(ctx, ctx.Param("id"), req.Status)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Order status updated", o)
}

func intQuery(ctx *gin.Context, key string) int {
	v, err := strconv.Atoi(ctx.Query(key))
	if err != nil {
		return 0
	}
	return v
}
