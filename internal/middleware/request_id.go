package middleware

import (
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

const RequestIDHeader = "X-Request-ID"

// RequestID tags the request with a correlation id, reusing the
// client's if it sent one.
func RequestID() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id := c.Request.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set("request_id", id)
		c.Writer.Header().Set(RequestIDHeader, id)

		c.Next()
	}
}
