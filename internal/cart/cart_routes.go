package cart

import (
	"github.com/gin-gonic/gin"

	"go-giftstore-api/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authOptional gin.HandlerFunc) {
	carts := r.Group("/cart")
	carts.Use(middleware.CartSession())
	carts.Use(authOptional)
	{
		carts.GET("", handler.Detail)
		carts.GET("/count", handler.Count)
		carts.DELETE("", handler.Clear)

		carts.POST("/items", handler.AddItem)
		carts.DELETE("/items/:index", handler.RemoveItem)

		carts.POST("/sync", handler.Sync)
		carts.POST("/signout", handler.SignOut)
	}
}
