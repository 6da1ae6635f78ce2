package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/paclead/platform-backend/internal/auth"
)

const errUnauthorized = "Unauthorized"

// Context keys set by Auth for downstream handlers.
const (
	CtxUserID  = "userID"
	CtxEmail   = "email"
	CtxScopeID = "scopeID"
)

// Auth validates a Bearer JWT and attaches the identity claims to the gin
// context. Requests without a valid token never reach the handler.
func Auth(issuer *auth.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
			return
		}

		rawToken := strings.TrimPrefix(header, "Bearer ")

		claims, err := issuer.Verify(rawToken)
		if err != nil {
			// Expired and invalid both end here; the client only needs to
			// know it must re-authenticate.
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
			return
		}

		if claims.UserID == "" || claims.ScopeID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxEmail, claims.Email)
		c.Set(CtxScopeID, claims.ScopeID)
		c.Next()
	}
}
