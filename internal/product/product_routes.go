package product

import (
	"github.com/gin-gonic/gin"

	"go-giftstore-api/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	products := r.Group("/products")
	{
		products.GET("", handler.List)
		products.GET("/:id", handler.Detail)
	}

	admin := r.Group("/admin/products")
	admin.Use(middleware.AdminAuthMiddleware())
	{
		admin.POST("", handler.Create)
		admin.PUT("/:id", handler.Update)
		admin.DELETE("/:id", handler.Delete)
		admin.POST("/images", handler.UploadImage)
	}
}
