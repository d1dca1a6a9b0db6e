package review

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authOptional gin.HandlerFunc) {
	// Reviews hang off the product resource; reading is public, writing
	// attaches the user id when one is present.
	products := r.Group("/products/:id/reviews")
	{
		products.GET("", handler.ListByProduct)
		products.POST("", authOptional, handler.Add)
	}
}
