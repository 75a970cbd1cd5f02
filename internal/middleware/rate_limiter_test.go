package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(e *echo.Echo, path, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter(t *testing.T) {
	e := echo.New()
	e.GET("/og", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	}, RateLimiter())

	t.Run("allows a burst of ten per client", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			rec := get(e, "/og", "192.0.2.2:1234")
			require.Equal(t, http.StatusOK, rec.Code, "request %d should be allowed", i+1)
		}

		rec := get(e, "/og", "192.0.2.2:1234")
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "Too many requests. Please try again later.", rec.Body.String())
	})

	t.Run("clients are limited independently", func(t *testing.T) {
		rec := get(e, "/og", "192.0.2.3:1234")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("forwarded client address is the identifier", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			req := httptest.NewRequest(http.MethodGet, "/og", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			req.Header.Set(echo.HeaderXRealIP, "198.51.100.7")
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			require.Equal(t, http.StatusOK, rec.Code)
		}

		// Same proxy, different client.
		req := httptest.NewRequest(http.MethodGet, "/og", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		req.Header.Set(echo.HeaderXRealIP, "198.51.100.8")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRateLimiterWithRate(t *testing.T) {
	e := echo.New()
	e.GET("/about/reload", func(c echo.Context) error {
		return c.NoContent(http.StatusSeeOther)
	}, RateLimiterWithRate(2))

	assert.Equal(t, http.StatusSeeOther, get(e, "/about/reload", "192.0.2.9:1").Code)
	assert.Equal(t, http.StatusSeeOther, get(e, "/about/reload", "192.0.2.9:1").Code)
	assert.Equal(t, http.StatusTooManyRequests, get(e, "/about/reload", "192.0.2.9:1").Code)
}
