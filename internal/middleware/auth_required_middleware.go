package middleware

import (
	"net/http"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	"go-giftstore-api/internal/pkg/apperror"
	"go-giftstore-api/internal/pkg/response"
)

// RequireFirebaseAuth guards customer-only endpoints (addresses, order
// history). Unlike OptionalFirebaseAuth there is no guest fallback: a
// missing or invalid token aborts with 401.
func RequireFirebaseAuth(client *fbauth.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Sign in required", nil)
			c.Abort()
			return
		}

		idToken := strings.TrimPrefix(header, "Bearer ")

		token, err := client.VerifyIDToken(c.Request.Context(), idToken)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		c.Set("user_id", token.UID)
		c.Next()
	}
}
