package middleware

import (
	"cryptopay-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// Merchant API headers.
const (
	HeaderAccessKey = "X-Merchant-Access-Key"
	HeaderSignature = "X-Signature"
	HeaderTimestamp = "X-Timestamp"
	HeaderNonce     = "X-Nonce"
	HeaderRequestID = "X-Request-ID"
)

// Gin context keys set by the auth and request middleware.
const (
	CtxMerchantID  = "merchant_id"
	CtxAccessKey   = "access_key"
	CtxMerchantKey = "merchant"
	CtxRole        = "role"
	CtxRequestID   = response.RequestIDKey
)

func abort(c *gin.Context, err error) {
	response.Error(c, err)
	c.Abort()
}
