package middleware

import (
	"strings"

	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// JWTAuth guards the dashboard and admin routes with a bearer token.
func JWTAuth(tokenSvc ports.TokenService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || token == "" {
			abort(c, apperror.ErrInvalidToken())
			return
		}

		claims, err := tokenSvc.Validate(token)
		if err != nil {
			log.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("bearer token rejected")
			abort(c, apperror.ErrInvalidToken())
			return
		}

		c.Set(CtxMerchantID, claims.MerchantID)
		c.Set(CtxAccessKey, claims.AccessKey)
		c.Set(CtxRole, claims.Role)
		c.Next()
	}
}

// RequireRole must run after JWTAuth.
func RequireRole(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if got, _ := c.Get(CtxRole); got != role {
			abort(c, apperror.ErrForbidden())
			return
		}
		c.Next()
	}
}
