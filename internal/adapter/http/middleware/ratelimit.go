package middleware

import (
	"context"
	"fmt"
	"strconv"
	"time"

	redisStore "cryptopay-gateway/internal/adapter/storage/redis"
	"cryptopay-gateway/pkg/apperror"
	"cryptopay-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Limiter counts requests against a fixed-window budget.
type Limiter interface {
	Allow(ctx context.Context, key string, rule redisStore.Rule) (*redisStore.RateLimitResult, error)
}

// Endpoint groups sharing a budget.
const (
	GroupDeposits     = "deposits"
	GroupAuthLogin    = "auth_login"
	GroupAuthRegister = "auth_register"
	GroupDashboard    = "dashboard"
	GroupWithdrawals  = "withdrawals"
	GroupAdmin        = "admin"
)

// DefaultRateLimitRules returns the request budget of each endpoint group.
func DefaultRateLimitRules() map[string]redisStore.Rule {
	return map[string]redisStore.Rule{
		GroupDeposits:     {Limit: 100, Window: time.Minute},
		GroupAuthLogin:    {Limit: 10, Window: time.Minute},
		GroupAuthRegister: {Limit: 5, Window: time.Hour},
		GroupDashboard:    {Limit: 60, Window: time.Minute},
		GroupWithdrawals:  {Limit: 20, Window: time.Minute},
		GroupAdmin:        {Limit: 120, Window: time.Minute},
	}
}

// RateLimiter creates a rate-limiting middleware for a given endpoint group.
// A failing store lets the request through.
func RateLimiter(store Limiter, group string, rule redisStore.Rule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", extractIdentifier(c), group)

		result, err := store.Allow(c.Request.Context(), key, rule)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

		if !result.Allowed {
			c.Header("Retry-After", strconv.FormatInt(result.RetryAfter(time.Now()), 10))
			response.Error(c, apperror.ErrRateLimitExceeded())
			c.Abort()
			return
		}

		c.Next()
	}
}

// extractIdentifier determines the rate limit key source.
func extractIdentifier(c *gin.Context) string {
	if ak := c.GetHeader(HeaderAccessKey); ak != "" {
		return ak
	}
	if mid, exists := c.Get(CtxMerchantID); exists {
		return fmt.Sprintf("%v", mid)
	}
	return c.ClientIP()
}
