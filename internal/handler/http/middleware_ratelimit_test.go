package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/MKhiriev/cpoint/internal/logger"
	"github.com/MKhiriev/cpoint/internal/ratelimit"
	"github.com/MKhiriev/cpoint/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRateLimitedHandler(limiter ratelimit.Limiter) *Handler {
	return NewHandler(&service.Services{}, limiter, logger.Nop())
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestWithRateLimit_Allowed(t *testing.T) {
	resetAt := time.Now().Add(10 * time.Minute)
	limiter := &mockLimiter{
		allowFn: func(context.Context, string) (ratelimit.Result, error) {
			return ratelimit.Result{Allowed: true, Limit: 5, Remaining: 4, ResetAt: resetAt}, nil
		},
	}
	h := newRateLimitedHandler(limiter)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.RemoteAddr = "192.0.2.10:54321"
	rec := httptest.NewRecorder()

	h.withRateLimit(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"192.0.2.10"}, limiter.keys)
	assert.Equal(t, "5", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "4", rec.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, strconv.FormatInt(resetAt.Unix(), 10), rec.Header().Get("X-RateLimit-Reset"))
	assert.Empty(t, rec.Header().Get("Retry-After"))
}

func TestWithRateLimit_Blocked(t *testing.T) {
	limiter := &mockLimiter{
		allowFn: func(context.Context, string) (ratelimit.Result, error) {
			return ratelimit.Result{Allowed: false, Limit: 5, Remaining: 0, ResetAt: time.Now().Add(90 * time.Second)}, nil
		},
	}
	h := newRateLimitedHandler(limiter)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	rec := httptest.NewRecorder()

	h.withRateLimit(okHandler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t,
		`{"success":false,"message":"Too many authentication attempts, please try again later"}`,
		rec.Body.String())
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	retryAfter, err := strconv.Atoi(rec.Header().Get("Retry-After"))
	require.NoError(t, err)
	assert.InDelta(t, 90, retryAfter, 2)
}

func TestWithRateLimit_FailsOpen(t *testing.T) {
	limiter := &mockLimiter{
		allowFn: func(context.Context, string) (ratelimit.Result, error) {
			return ratelimit.Result{}, errors.New("redis unavailable")
		},
	}
	h := newRateLimitedHandler(limiter)

	rec := httptest.NewRecorder()
	h.withRateLimit(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
}

func TestWithRateLimit_NilLimiter(t *testing.T) {
	h := newRateLimitedHandler(nil)

	rec := httptest.NewRecorder()
	h.withRateLimit(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestClientAddress(t *testing.T) {
	tests := []struct {
		remoteAddr string
		want       string
	}{
		{"203.0.113.7:1234", "203.0.113.7"},
		{"[2001:db8::1]:443", "2001:db8::1"},
		{"203.0.113.7", "203.0.113.7"},
	}

	for _, tt := range tests {
		t.Run(tt.remoteAddr, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			assert.Equal(t, tt.want, clientAddress(req))
		})
	}
}
