package order

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"go-giftstore-api/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client, authOptional, authRequired gin.HandlerFunc) {
	orders := r.Group("/orders")
	{
		// Checkout works for guests too, so identity is optional here. The
		// idempotency guard stops double-submits from the storefront.
		orders.POST("/checkout",
			middleware.CartSession(),
			authOptional,
			middleware.Idempotency(rdb),
			handler.Checkout,
		)

		orders.GET("", authRequired, handler.History)
		orders.GET("/:id", authRequired, handler.Detail)
	}

	admin := r.Group("/admin/orders")
	admin.Use(middleware.AdminAuthMiddleware())
	{
		admin.GET("", handler.ListAdmin)
		admin.PATCH("/:id/status", handler.UpdateStatus)
	}
}
