package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CorrelationIDHeader is the header carrying the request correlation id.
const CorrelationIDHeader = "X-Correlation-ID"

// CorrelationIDKey is the gin context key the correlation id is stored
// under.
const CorrelationIDKey = "correlation_id"

// CorrelationID returns a middleware that propagates the incoming
// correlation id, generating one when the header is absent. The id is
// echoed back on the response.
func CorrelationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		correlationID := c.GetHeader(CorrelationIDHeader)
		if correlationID == "" {
			correlationID = uuid.NewString()
		}

		c.Set(CorrelationIDKey, correlationID)
		c.Writer.Header().Set(CorrelationIDHeader, correlationID)

		c.Next()
	}
}
