package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-workbench-api/internal/auth"
	"portfolio-workbench-api/internal/metrics"
	"portfolio-workbench-api/internal/response"
)

// Auth returns a middleware that verifies the bearer token, rejects
// revoked tokens, and loads the user id into the request context.
// The blacklist may be nil when Redis is disabled; blacklist checks are
// then skipped.
func Auth(issuer *auth.TokenIssuer, blacklist auth.Blacklist, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if !ok {
			m.TrackAuthFailure("missing_token")
			response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authorization header is required")
			c.Abort()
			return
		}

		claims, err := issuer.Verify(tokenString)
		if err != nil {
			m.TrackAuthFailure("invalid_token")
			m.TrackTokenOperation("validate", metrics.ResultFailure)
			response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		if blacklist != nil && claims.TokenID != "" {
			revoked, err := blacklist.IsRevoked(c.Request.Context(), claims.TokenID)
			if err != nil {
				m.TrackAuthFailure("blacklist_unavailable")
				response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Failed to validate token")
				c.Abort()
				return
			}
			if revoked {
				m.TrackAuthFailure("revoked_token")
				response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Token has been revoked")
				c.Abort()
				return
			}
		}

		m.TrackTokenOperation("validate", metrics.ResultSuccess)

		// Store user ID and raw token in context for downstream use
		c.Set("user_id", claims.UserID)
		c.Set("jwtToken", tokenString)

		c.Next()
	}
}
