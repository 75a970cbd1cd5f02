package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// RateLimiter creates a new rate limiter middleware with a sensible default configuration.
// It limits requests to 10 per IP address for the routes it's applied to; the
// preview image and content reload endpoints use it.
func RateLimiter() echo.MiddlewareFunc {
	return RateLimiterWithRate(10)
}

// RateLimiterWithRate is RateLimiter with a custom requests-per-second limit.
func RateLimiterWithRate(limit rate.Limit) echo.MiddlewareFunc {
	config := middleware.RateLimiterConfig{
		// In-memory store, suitable for single-instance deployments.
		Store: middleware.NewRateLimiterMemoryStore(limit),

		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.String(http.StatusTooManyRequests, "Too many requests. Please try again later.")
		},
	}
	return middleware.RateLimiterWithConfig(config)
}
