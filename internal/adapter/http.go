package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/cpoint/internal/config"
	"github.com/MKhiriev/cpoint/internal/logger"
	"github.com/MKhiriev/cpoint/internal/utils"
	"github.com/MKhiriev/cpoint/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates cfg.ServerAddress and bounds
// every request with cfg.RequestTimeout.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(cfg config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter] with POST /api/auth/register.
func (h *httpServerAdapter) Register(ctx context.Context, request models.RegisterRequest) (models.UserView, error) {
	var result models.Response

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&result).
		Post("/api/auth/register")
	if err != nil {
		return models.UserView{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserView{}, err
	}

	return h.acceptAuthResponse(result, "register")
}

// Login implements [ServerAdapter] with POST /api/auth/login.
func (h *httpServerAdapter) Login(ctx context.Context, request models.LoginRequest) (models.UserView, error) {
	var result models.Response

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&result).
		Post("/api/auth/login")
	if err != nil {
		return models.UserView{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserView{}, err
	}

	return h.acceptAuthResponse(result, "login")
}

// Me implements [ServerAdapter] with GET /api/auth/me.
func (h *httpServerAdapter) Me(ctx context.Context) (models.UserView, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.UserView{}, err
	}

	var result models.Response
	resp, err := req.SetResult(&result).Get("/api/auth/me")
	if err != nil {
		return models.UserView{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserView{}, err
	}

	return userFromResponse(result, "me")
}

// UpdateProfile implements [ServerAdapter] with PUT /api/auth/profile.
func (h *httpServerAdapter) UpdateProfile(ctx context.Context, request models.ProfileUpdateRequest) (models.UserView, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.UserView{}, err
	}

	var result models.Response
	resp, err := req.SetBody(request).SetResult(&result).Put("/api/auth/profile")
	if err != nil {
		return models.UserView{}, fmt.Errorf("update profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserView{}, err
	}

	return userFromResponse(result, "update profile")
}

// Logout implements [ServerAdapter] with POST /api/auth/logout.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}
	defer h.SetToken("")

	resp, err := req.Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

// Health implements [ServerAdapter] with GET /api/health.
func (h *httpServerAdapter) Health(ctx context.Context) (models.Response, error) {
	var result models.Response

	resp, err := h.client.R().SetContext(ctx).SetResult(&result).Get("/api/health")
	if err != nil {
		return models.Response{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Response{}, err
	}

	return result, nil
}

func (h *httpServerAdapter) acceptAuthResponse(result models.Response, operation string) (models.UserView, error) {
	if result.Token == "" {
		return models.UserView{}, fmt.Errorf("%s: %w: response carries no token", operation, ErrUnexpectedStatus)
	}

	user, err := userFromResponse(result, operation)
	if err != nil {
		return models.UserView{}, err
	}

	h.SetToken(result.Token)
	h.logger.Debug().Str("user_id", user.ID).Str("operation", operation).Msg("token received")
	return user, nil
}

func userFromResponse(result models.Response, operation string) (models.UserView, error) {
	if result.User == nil {
		return models.UserView{}, fmt.Errorf("%s: %w: response carries no user", operation, ErrUnexpectedStatus)
	}
	return *result.User, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}
	return h.client.R().SetContext(ctx).SetAuthToken(token), nil
}
