package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"invoice-renamer/internal/shared/server/respond"
)

// SessionCookie is the cookie holding the gate session token.
const SessionCookie = "renamer_session"

// TokenValidator reports whether a session token is live.
type TokenValidator interface {
	Validate(token string) bool
}

// Session rejects requests that do not carry a valid gate session.
func Session(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		token, err := c.Cookie(SessionCookie)
		if err != nil || strings.TrimSpace(token) == "" || !tokens.Validate(token) {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "password gate not passed", nil)
			return
		}
		c.Next()
	}
}
