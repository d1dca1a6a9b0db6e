package cart

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

func sessionFrom(ctx *gin.Context) Session {
	return Session{
		SessionID: ctx.GetString("session_id"),
		UserID:    ctx.GetString("user_id"),
	}
}

func (h *Handler) Detail(ctx *gin.Context) {
	items, err := h.service.Items(ctx, sessionFrom(ctx))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Cart retrieved", NewCartResponse(items))
}

func (h *Handler) Count(ctx *gin.Context) {
	items, err := h.service.Items(ctx, sessionFrom(ctx))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Cart count retrieved", CartCountResponse{Count: Count(items)})
}

func (h *Handler) AddItem(ctx *gin.Context) {
	var req AddItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	items, err := h.service.AddItem(ctx, sessionFrom(ctx), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusCreated, "Item added to cart", NewCartResponse(items))
}

func (h *Handler) RemoveItem(ctx *gin.Context) {
	// A non-numeric or out-of-range index is a no-op, never an error.
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		index = -1
	}

	items, err := h.service.RemoveItem(ctx, sessionFrom(ctx), index)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Item removed from cart", NewCartResponse(items))
}

func (h *Handler) Clear(ctx *gin.Context) {
	if err := h.service.Clear(ctx, sessionFrom(ctx)); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Cart cleared", nil)
}

// Sync is called by the storefront right after sign-in completes; it runs
// the guest/remote merge and returns the authoritative cart.
func (h *Handler) Sync(ctx *gin.Context) {
	items, err := h.service.SignIn(ctx, sessionFrom(ctx))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Cart synced", NewCartResponse(items))
}

// SignOut flushes the cart to the user's remote store before the client
// drops its credentials. The local cart survives for guest mode.
func (h *Handler) SignOut(ctx *gin.Context) {
	if err := h.service.SignOut(ctx, sessionFrom(ctx)); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Cart flushed", nil)
}
