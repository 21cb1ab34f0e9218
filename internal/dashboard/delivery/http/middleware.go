package http

import (
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"golang-trading-dashboard/internal/dashboard/config"
	"golang-trading-dashboard/internal/dashboard/dto"
	"golang-trading-dashboard/pkg/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// RequestLogger tags every request with an id and logs it once it completes.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			id := req.Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, id)
			c.SetRequest(req.WithContext(logger.WithRequestID(req.Context(), id)))

			if err := next(c); err != nil {
				c.Error(err)
			}

			log.InfoContext(c.Request().Context(), "HTTP request",
				logger.StringField("method", req.Method),
				logger.StringField("path", c.Path()),
				logger.IntField("status", c.Response().Status),
				logger.StringField("remote_ip", c.RealIP()),
				logger.Field("latency", time.Since(start)),
			)
			return nil
		}
	}
}

// IPExtractor resolves the client IP used for rate limiting and access logs.
// X-Forwarded-For is only honoured when the direct peer is in trustedProxies.
func IPExtractor(trustedProxies []string) (echo.IPExtractor, error) {
	if len(trustedProxies) == 0 {
		return echo.ExtractIPDirect(), nil
	}

	opts := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, cidr := range trustedProxies {
		_, ipNet, err := net.ParseCIDR(cidr)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy %q: %w", cidr, err)
		}
		opts = append(opts, echo.TrustIPRange(ipNet))
	}
	return echo.ExtractIPFromXFFHeader(opts...), nil
}

// RateLimiter throttles requests per client IP. Limiters of idle clients
// expire from the cache.
type RateLimiter struct {
	mu       sync.Mutex
	limiters *cache.Cache
	limit    rate.Limit
	burst    int
}

// NewRateLimiter creates a RateLimiter from configuration.
func NewRateLimiter(cfg config.RateLimit) *RateLimiter {
	return &RateLimiter{
		limiters: cache.New(cfg.IdleTTL, cfg.IdleTTL),
		limit:    rate.Limit(cfg.RequestsPerSecond),
		burst:    cfg.Burst,
	}
}

// Middleware rejects requests over the client's budget with 429.
func (l *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !l.limiter(c.RealIP()).Allow() {
				return c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{Error: "Too many requests"})
			}
			return next(c)
		}
	}
}

func (l *RateLimiter) limiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if v, ok := l.limiters.Get(key); ok {
		lim := v.(*rate.Limiter)
		l.limiters.SetDefault(key, lim)
		return lim
	}
	lim := rate.NewLimiter(l.limit, l.burst)
	l.limiters.SetDefault(key, lim)
	return lim
}
