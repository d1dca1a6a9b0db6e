package area

import (
	"github.com/gin-gonic/gin"

	"go-giftstore-api/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	areas := r.Group("/areas")
	{
		areas.GET("", handler.List)
		areas.GET("/pincode/:pincode", handler.CheckPincode)
	}

	admin := r.Group("/admin/areas")
	admin.Use(middleware.AdminAuthMiddleware())
	{
		admin.POST("", handler.Create)
		admin.PUT("/:id", handler.Update)
		admin.DELETE("/:id", handler.Delete)
	}
}
