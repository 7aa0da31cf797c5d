package http

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/cpoint/internal/config"
	"github.com/MKhiriev/cpoint/internal/logger"
	"github.com/MKhiriev/cpoint/internal/ratelimit"
	"github.com/MKhiriev/cpoint/internal/service"
	"github.com/MKhiriev/cpoint/internal/store"
	"github.com/MKhiriev/cpoint/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// newFlowRouter wires the real stack on an in-memory SQLite database.
func newFlowRouter(t *testing.T, rateLimit config.RateLimit) http.Handler {
	t.Helper()
	return newFlowRouterWithLogger(t, rateLimit, logger.Nop())
}

func newFlowRouterWithLogger(t *testing.T, rateLimit config.RateLimit, log *logger.Logger) http.Handler {
	t.Helper()
	ctx := context.Background()

	cfg := &config.StructuredConfig{
		App: config.App{
			TokenSignKey:  "flow-test-secret",
			TokenIssuer:   "cpoint",
			TokenDuration: 24 * time.Hour,
			BcryptCost:    bcrypt.MinCost,
			Version:       "flow-test",
		},
		Storage:   config.Storage{DB: config.DB{DSN: "sqlite://:memory:"}},
		RateLimit: rateLimit,
	}

	db, err := store.NewConnect(ctx, cfg.Storage.DB, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate(ctx))

	services, err := service.NewServices(store.NewStorages(db, logger.Nop()), cfg, models.NewBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)

	memoryStore := ratelimit.NewMemoryStore()
	t.Cleanup(func() { _ = memoryStore.Close() })
	limiter, err := ratelimit.NewFixedWindow(memoryStore, rateLimit)
	require.NoError(t, err)

	return NewHandler(services, limiter, log).Init()
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestFlow_AccountLifecycle(t *testing.T) {
	router := newFlowRouter(t, config.RateLimit{Requests: 100, Window: 15 * time.Minute})

	// register
	rec := serve(router, http.MethodPost, "/api/auth/register",
		`{"email":"Alice@Example.com","password":"secret1","firstName":"Alice","lastName":"Smith"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	registered := decodeResponse(t, rec)
	require.NotEmpty(t, registered.Token)
	require.NotNil(t, registered.User)
	assert.Equal(t, "alice@example.com", registered.User.Email)
	assert.NotContains(t, rec.Body.String(), "secret1")

	// duplicate, differing only in case
	rec = serve(router, http.MethodPost, "/api/auth/register",
		`{"email":"alice@example.COM","password":"secret2","firstName":"A","lastName":"B"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email already registered", decodeResponse(t, rec).Message)

	// me
	rec = serve(router, http.MethodGet, "/api/auth/me", "", bearer(registered.Token))
	require.Equal(t, http.StatusOK, rec.Code)
	me := decodeResponse(t, rec)
	assert.Equal(t, registered.User.ID, me.User.ID)
	assert.NotNil(t, me.User.CreatedAt)

	// wrong password and unknown email look the same
	wrongPassword := serve(router, http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"nope-nope"}`, nil)
	unknownEmail := serve(router, http.MethodPost, "/api/auth/login",
		`{"email":"bob@example.com","password":"nope-nope"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, wrongPassword.Code, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())

	// login
	rec = serve(router, http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"secret1"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	loggedIn := decodeResponse(t, rec)
	assert.NotEqual(t, registered.Token, loggedIn.Token)

	// profile
	rec = serve(router, http.MethodPut, "/api/auth/profile",
		`{"firstName":"Alicia","lastName":"Smith-Jones"}`, bearer(loggedIn.Token))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	profile := decodeResponse(t, rec)
	assert.Equal(t, "Alicia", profile.User.FirstName)
	assert.Equal(t, "Smith-Jones", profile.User.LastName)
	assert.Equal(t, "alice@example.com", profile.User.Email)
	assert.NotNil(t, profile.User.UpdatedAt)

	// the first token is still valid and sees the new names
	rec = serve(router, http.MethodGet, "/api/auth/me", "", bearer(registered.Token))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Alicia", decodeResponse(t, rec).User.FirstName)

	// logout is acknowledged; the token stays valid until expiry
	rec = serve(router, http.MethodPost, "/api/auth/logout", "", bearer(loggedIn.Token))
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = serve(router, http.MethodGet, "/api/auth/me", "", bearer(loggedIn.Token))
	assert.Equal(t, http.StatusOK, rec.Code)

	// tampered token
	rec = serve(router, http.MethodGet, "/api/auth/me", "", bearer(loggedIn.Token+"x"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid token", decodeResponse(t, rec).Message)
}

func TestFlow_RegistrationLoggedOnce(t *testing.T) {
	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}
	router := newFlowRouterWithLogger(t, config.RateLimit{Requests: 100, Window: 15 * time.Minute}, log)

	rec := serve(router, http.MethodPost, "/api/auth/register",
		`{"email":"once@example.com","password":"secret1","firstName":"A","lastName":"B"}`, nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, strings.Count(buf.String(), `"message":"user registered"`))
}

func TestFlow_ValidationMessages(t *testing.T) {
	router := newFlowRouter(t, config.RateLimit{Requests: 100, Window: 15 * time.Minute})

	tests := []struct {
		name    string
		target  string
		body    string
		message string
	}{
		{"empty register", "/api/auth/register", `{}`, `"email" is required`},
		{"bad email", "/api/auth/register", `{"email":"not-an-email","password":"secret1","firstName":"A","lastName":"B"}`, `"email" must be a valid email`},
		{"short password", "/api/auth/register", `{"email":"a@b.co","password":"12345","firstName":"A","lastName":"B"}`, `"password" length must be at least 6 characters long`},
		{"missing last name", "/api/auth/register", `{"email":"a@b.co","password":"123456","firstName":"A"}`, `"lastName" is required`},
		{"login without password", "/api/auth/login", `{"email":"a@b.co"}`, `"password" is required`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(router, http.MethodPost, tt.target, tt.body, nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.message, decodeResponse(t, rec).Message)
		})
	}
}

func TestFlow_RateLimitOnAuthAttempts(t *testing.T) {
	router := newFlowRouter(t, config.RateLimit{Requests: 5, Window: 15 * time.Minute})

	for i := 0; i < 5; i++ {
		rec := serve(router, http.MethodPost, "/api/auth/login",
			`{"email":"nobody@example.com","password":"whatever"}`, nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code, "attempt %d", i+1)
	}

	rec := serve(router, http.MethodPost, "/api/auth/register",
		`{"email":"new@example.com","password":"secret1","firstName":"A","lastName":"B"}`, nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "Too many authentication attempts, please try again later", decodeResponse(t, rec).Message)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	rec = serve(router, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestFlow_RateLimitIgnoresRotatingForwardedFor(t *testing.T) {
	router := newFlowRouter(t, config.RateLimit{Requests: 5, Window: 15 * time.Minute})

	statuses := make([]int, 0, 6)
	for i := 1; i <= 6; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
			strings.NewReader(`{"email":"nobody@example.com","password":"whatever"}`))
		req.RemoteAddr = "203.0.113.7:40000"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("10.0.0.%d", i))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		statuses = append(statuses, rec.Code)
	}

	assert.Equal(t, []int{401, 401, 401, 401, 401, 429}, statuses)
}
