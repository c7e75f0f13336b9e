package middleware

import (
	"net/http"

	"cryptopay-gateway/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// MaxBodySize caps the request body. A declared Content-Length over the cap
// is refused before any handler runs; a body that only turns out too long
// while streaming makes the read fail, which binding reports as a
// validation error.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			abort(c, apperror.New("REQ_001", "Request body too large", http.StatusRequestEntityTooLarge))
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
