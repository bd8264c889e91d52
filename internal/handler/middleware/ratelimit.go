package middleware

import (
	"log/slog"
	"net/http"

	"hotel-frontdesk/internal/handler/httperr"
	"hotel-frontdesk/internal/pkg/config"
	"hotel-frontdesk/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	ginmiddleware "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	redisstore "github.com/ulule/limiter/v3/drivers/store/redis"
)

var errRateLimited = errs.New("rate limit reached")

// NewRateLimiter limits requests per client IP. rate uses the limiter format
// ("300-M"); empty disables limiting. A nil client keeps counters in memory.
func NewRateLimiter(rate, prefix string, client redis.UniversalClient) (gin.HandlerFunc, error) {
	if rate == "" {
		return func(c *gin.Context) { c.Next() }, nil
	}

	parsed, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, errs.Wrapf(err, "parse rate %q", rate)
	}

	var store limiter.Store
	if client != nil {
		store, err = redisstore.NewStoreWithOptions(client, limiter.StoreOptions{
			Prefix:   "rate_limiter:" + prefix,
			MaxRetry: 3,
		})
		if err != nil {
			return nil, errs.Wrapf(err, "create redis limiter store for %s", prefix)
		}
	} else {
		store = memory.NewStoreWithOptions(limiter.StoreOptions{
			Prefix:          "rate_limiter:" + prefix,
			CleanUpInterval: parsed.Period,
		})
	}

	slog.Info("rate limiter initialized", "scope", prefix, "rate", rate, "redis", client != nil)
	return ginmiddleware.NewMiddleware(
		limiter.New(store, parsed),
		ginmiddleware.WithLimitReachedHandler(func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests", nil)
		}),
		ginmiddleware.WithErrorHandler(func(c *gin.Context, err error) {
			// fail open
			slog.Warn("rate limiter store failed", "scope", prefix, "error", err)
			c.Next()
		}),
	), nil
}

type RateLimiters struct {
	API   gin.HandlerFunc
	Login gin.HandlerFunc
}

// NewRateLimiters builds the general and login limiters. A nil client keeps
// counters in process memory.
func NewRateLimiters(cfg config.RateLimitConfig, client redis.UniversalClient) (*RateLimiters, error) {
	api, err := NewRateLimiter(cfg.Rate, "api:", client)
	if err != nil {
		return nil, err
	}
	login, err := NewRateLimiter(cfg.LoginRate, "login:", client)
	if err != nil {
		return nil, err
	}
	return &RateLimiters{API: api, Login: login}, nil
}
