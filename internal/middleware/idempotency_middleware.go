package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"go-giftstore-api/internal/pkg/apperror"
	"go-giftstore-api/internal/pkg/response"
)

const idempotencyTTL = 10 * time.Minute

// Idempotency rejects a replayed Idempotency-Key within the TTL window.
// Requests without the header pass through unguarded.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("Idempotency-Key")
		if key == "" || rdb == nil {
			c.Next()
			return
		}

		ok, err := rdb.SetNX(c.Request.Context(), "idempotency:"+key, "1", idempotencyTTL).Result()
		if err != nil {
			// Redis being down must not block checkout.
			c.Next()
			return
		}
		if !ok {
			response.Error(c, http.StatusConflict, apperror.CodeConflict, "Duplicate request", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
