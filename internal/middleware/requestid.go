package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"nurse-manager/pkg/log"
)

const RequestIDHeader = "X-Request-ID"

// RequestID propagates or generates a request id and attaches it to the
// request context for logging.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
