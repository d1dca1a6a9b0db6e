package category

import (
	"github.com/gin-gonic/gin"

	"go-giftstore-api/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	categories := r.Group("/categories")
	{
		categories.GET("", handler.List)
		categories.GET("/:id/subcategories", handler.ListSubcategories)
	}

	admin := r.Group("/admin/categories")
	admin.Use(middleware.AdminAuthMiddleware())
	{
		admin.POST("", handler.Create)
		admin.PUT("/:id", handler.Update)
		admin.DELETE("/:id", handler.Delete)

		admin.POST("/subcategories", handler.CreateSubcategory)
		admin.DELETE("/subcategories/:id", handler.DeleteSubcategory)
	}
}
