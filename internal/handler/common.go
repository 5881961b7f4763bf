package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio-workbench-api/internal/response"
)

// currentUserID returns the authenticated user id set by the auth
// middleware. Responds 401 and returns false when it is missing.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return uuid.Nil, false
	}
	userID, ok := v.(uuid.UUID)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return uuid.Nil, false
	}
	return userID, true
}

// bearerToken returns the raw token string set by the auth middleware.
func bearerToken(c *gin.Context) (string, bool) {
	v, exists := c.Get("jwtToken")
	if !exists {
		return "", false
	}
	token, ok := v.(string)
	return token, ok
}
