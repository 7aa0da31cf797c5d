package http

import (
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/cpoint/internal/logger"
	"github.com/MKhiriev/cpoint/internal/ratelimit"
	"github.com/MKhiriev/cpoint/internal/service"
	"github.com/MKhiriev/cpoint/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRouter builds the full router over mocked services.
func newRouter(t *testing.T, auth service.AuthService, limiter ratelimit.Limiter, opts ...Option) http.Handler {
	t.Helper()
	svcs := &service.Services{
		AppInfoService: &mockAppInfoService{version: "test-version", now: testNow},
		AuthService:    auth,
	}
	return NewHandler(svcs, limiter, logger.Nop(), opts...).Init()
}

func serve(router http.Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRoutes_UnknownRoutes(t *testing.T) {
	router := newRouter(t, &mockAuthService{}, nil)

	tests := []struct {
		name   string
		method string
		target string
	}{
		{"unknown path", http.MethodGet, "/api/unknown"},
		{"root", http.MethodGet, "/"},
		{"wrong method on login", http.MethodGet, "/api/auth/login"},
		{"wrong method on me", http.MethodPost, "/api/auth/me"},
		{"wrong method on profile", http.MethodPatch, "/api/auth/profile"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(router, tt.method, tt.target, "", nil)

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.JSONEq(t, `{"success":false,"message":"Route not found"}`, rec.Body.String())
		})
	}
}

func TestRoutes_Health(t *testing.T) {
	router := newRouter(t, &mockAuthService{}, nil)

	rec := serve(router, http.MethodGet, "/api/health", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "CPoint API is running", resp.Message)
	require.NotNil(t, resp.Timestamp)
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestRoutes_GatedRoutesRequireToken(t *testing.T) {
	router := newRouter(t, &mockAuthService{}, nil)

	for _, route := range []struct{ method, target string }{
		{http.MethodGet, "/api/auth/me"},
		{http.MethodPut, "/api/auth/profile"},
		{http.MethodPost, "/api/auth/logout"},
	} {
		t.Run(route.target, func(t *testing.T) {
			rec := serve(router, route.method, route.target, "", nil)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Access token required", decodeResponse(t, rec).Message)
		})
	}
}

func TestRoutes_GateResolvesUserForMe(t *testing.T) {
	auth := &mockAuthService{
		authenticateFn: func(_ context.Context, raw string) (models.User, error) {
			require.Equal(t, "tok", raw)
			return testUser, nil
		},
	}
	router := newRouter(t, auth, nil)

	rec := serve(router, http.MethodGet, "/api/auth/me", "", map[string]string{"Authorization": "Bearer tok"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testUser.Email, decodeResponse(t, rec).User.Email)
}

func TestRoutes_RateLimitOnlyOnRegisterAndLogin(t *testing.T) {
	limiter := &mockLimiter{
		allowFn: func(context.Context, string) (ratelimit.Result, error) {
			return ratelimit.Result{Allowed: false, Limit: 5, ResetAt: time.Now().Add(time.Minute)}, nil
		},
	}
	auth := &mockAuthService{
		authenticateFn: func(context.Context, string) (models.User, error) { return testUser, nil },
	}
	router := newRouter(t, auth, limiter)

	for _, target := range []string{"/api/auth/register", "/api/auth/login"} {
		rec := serve(router, http.MethodPost, target, `{}`, nil)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code, target)
	}

	rec := serve(router, http.MethodPost, "/api/auth/logout", "", map[string]string{"Authorization": "Bearer tok"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(router, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Len(t, limiter.keys, 2)
}

func TestRoutes_ForwardedHeadersIgnoredByDefault(t *testing.T) {
	limiter := &mockLimiter{
		allowFn: func(context.Context, string) (ratelimit.Result, error) {
			return ratelimit.Result{Allowed: false, Limit: 5, ResetAt: time.Now().Add(time.Minute)}, nil
		},
	}
	router := newRouter(t, &mockAuthService{}, limiter)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{}`))
	req.RemoteAddr = "203.0.113.7:40000"
	req.Header.Set("X-Real-IP", "198.51.100.23")
	req.Header.Set("X-Forwarded-For", "10.0.0.1")
	req.Header.Set("True-Client-IP", "10.0.0.2")
	router.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, []string{"203.0.113.7"}, limiter.keys)
}

func TestRoutes_ForwardedHeadersUsedWhenTrusted(t *testing.T) {
	limiter := &mockLimiter{
		allowFn: func(context.Context, string) (ratelimit.Result, error) {
			return ratelimit.Result{Allowed: false, Limit: 5, ResetAt: time.Now().Add(time.Minute)}, nil
		},
	}
	router := newRouter(t, &mockAuthService{}, limiter, WithForwardedClientAddress())

	serve(router, http.MethodPost, "/api/auth/login", `{}`, map[string]string{"X-Real-IP": "198.51.100.23"})

	assert.Equal(t, []string{"198.51.100.23"}, limiter.keys)
}

func TestRoutes_GzipResponse(t *testing.T) {
	router := newRouter(t, &mockAuthService{}, nil)

	rec := serve(router, http.MethodGet, "/api/health", "", map[string]string{"Accept-Encoding": "gzip"})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	data, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Contains(t, string(data), "CPoint API is running")
}

func TestRoutes_BodyTooLarge(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(context.Context, models.LoginRequest) (models.AuthResult, error) {
			t.Fatal("service must not be reached")
			return models.AuthResult{}, nil
		},
	}
	router := newRouter(t, auth, nil)

	body := `{"email":"` + strings.Repeat("a", maxRequestBodySize) + `"}`
	rec := serve(router, http.MethodPost, "/api/auth/login", body, nil)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "Request entity too large", decodeResponse(t, rec).Message)
}

func TestRoutes_PanicIsRecovered(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(context.Context, models.LoginRequest) (models.AuthResult, error) {
			panic("unexpected")
		},
	}
	router := newRouter(t, auth, nil)

	rec := serve(router, http.MethodPost, "/api/auth/login", `{}`, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decodeResponse(t, rec).Message)
}
