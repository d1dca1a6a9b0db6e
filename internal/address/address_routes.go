package address

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authRequired gin.HandlerFunc) {
	addresses := r.Group("/addresses")
	addresses.Use(authRequired)
	{
		addresses.GET("", handler.List)
		addresses.GET("/default", handler.Default)
		addresses.POST("", handler.Create)
		addresses.PUT("/:id", handler.Update)
		addresses.DELETE("/:id", handler.Delete)
	}
}
