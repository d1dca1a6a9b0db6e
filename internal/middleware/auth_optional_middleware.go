package middleware

import (
	"strings"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
)

// OptionalFirebaseAuth resolves the nullable customer identity. A valid
// Firebase ID token in the Authorization header yields a user_id; anything
// else (no header, bad token, expired token) continues as guest.
func OptionalFirebaseAuth(client *fbauth.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.Next()
			return
		}

		idToken := strings.TrimPrefix(header, "Bearer ")

		token, err := client.VerifyIDToken(c.Request.Context(), idToken)
		if err != nil {
			// Invalid token → treat as guest
			c.Next()
			return
		}

		c.Set("user_id", token.UID)
		c.Next()
	}
}
