package auth

import (
	"net/http"
	"time"

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

func (h *Handler) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	token, session, err := h.service.Login(ctx, req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	ctx.SetCookie("admin_token", token, maxAge, "/", "", true, true)

	response.Success(ctx, http.StatusOK, "Logged in", LoginResponse{
		Email:     session.Email,
		ExpiresAt: session.ExpiresAt,
	})
}

// Logout destroys the session by expiring the cookie.
func (h *Handler) Logout(ctx *gin.Context) {
	ctx.SetCookie("admin_token", "", -1, "/", "", true, true)
	response.Success(ctx, http.StatusOK, "Logged out", nil)
}

func (h *Handler) Me(ctx *gin.Context) {
	session, ok := SessionFromContext(ctx)
	if !ok {
		response.Error(ctx, http.StatusUnauthorized, apperror.CodeUnauthorized, "Not logged in", nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Session active", SessionResponse{Email: session.Email})
}
