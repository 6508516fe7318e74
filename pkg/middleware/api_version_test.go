package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestAPIVersionMiddleware_CurrentVersion(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	version := APIVersion{
		Version:       "1.0.0",
		LatestVersion: "1.0.0",
	}

	handler := APIVersionMiddleware(version)(func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	err := handler(c)
	assert.NoError(t, err)

	assert.Equal(t, "1.0.0", rec.Header().Get("X-API-Version"))
	assert.Equal(t, "1.0.0", rec.Header().Get("X-API-Latest-Version"))
	assert.Empty(t, rec.Header().Get("Deprecation"))
}

func TestAPIVersionMiddleware_DeprecatedVersion(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	version := APIVersion{
		Version:         "1.0.0",
		LatestVersion:   "2.0.0",
		DeprecationDate: "2026-06-01",
		SunsetDate:      "2026-12-01",
	}

	handler := APIVersionMiddleware(version)(func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	err := handler(c)
	assert.NoError(t, err)

	assert.Equal(t, "true", rec.Header().Get("Deprecation"))
	assert.Equal(t, "2026-06-01", rec.Header().Get("X-API-Deprecation-Date"))
	assert.Equal(t, "2026-12-01", rec.Header().Get("Sunset"))
}

func TestVersionInfo(t *testing.T) {
	info := VersionInfo(APIVersion{Version: "1.0.0", LatestVersion: "1.0.0"})
	assert.Equal(t, "1.0.0", info["version"])
	_, deprecated := info["deprecated"]
	assert.False(t, deprecated)

	info = VersionInfo(APIVersion{
		Version:         "1.0.0",
		LatestVersion:   "2.0.0",
		DeprecationDate: "2026-06-01",
	})
	assert.Equal(t, true, info["deprecated"])
	assert.Equal(t, "2026-06-01", info["deprecation_date"])
}
