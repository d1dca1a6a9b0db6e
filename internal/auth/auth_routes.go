package auth

import (
	"github.com/gin-gonic/gin"

	"go-giftstore-api/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	admin := r.Group("/admin/auth")
	{
		admin.POST("/login", handler.Login)
		admin.POST("/logout", handler.Logout)
		admin.GET("/me", middleware.AdminAuthMiddleware(), handler.Me)
	}
}
