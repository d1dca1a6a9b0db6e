package offer

import (
	"github.com/gin-gonic/gin"

	"go-giftstore-api/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	offers := r.Group("/offers")
	{
		offers.GET("", handler.List)
		offers.GET("/applicable", handler.Applicable)
	}

	admin := r.Group("/admin/offers")
	admin.Use(middleware.AdminAuthMiddleware())
	{
		admin.POST("", handler.Create)
		admin.PUT("/:id", handler.Update)
		admin.DELETE("/:id", handler.Delete)
	}
}
