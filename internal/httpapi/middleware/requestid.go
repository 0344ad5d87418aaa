package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/hqzhou/webchat/internal/common"
)

const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with a ULID unless the client supplied one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			if v, err := common.NewULID(); err == nil {
				id = v
			}
		}
		if id != "" {
			c.Writer.Header().Set(RequestIDHeader, id)
			c.Set("request_id", id)
		}
		c.Next()
	}
}
