package server

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/cpoint/internal/config"
	"github.com/MKhiriev/cpoint/internal/handler"
	"github.com/MKhiriev/cpoint/internal/logger"
	"github.com/MKhiriev/cpoint/internal/service"
	"github.com/MKhiriev/cpoint/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAppInfo struct{}

func (stubAppInfo) GetAppVersion(context.Context) string         { return "test" }
func (stubAppInfo) GetBuildInfo(context.Context) models.BuildInfo { return models.BuildInfo{Version: "test"} }
func (stubAppInfo) Now(context.Context) time.Time                 { return time.Now().UTC() }

func newTestServer(t *testing.T, address string) *server {
	t.Helper()

	cfg := config.Server{HTTPAddress: address, RequestTimeout: 5 * time.Second, ShutdownTimeout: time.Second}
	handlers, err := handler.NewHandlers(&service.Services{AppInfoService: stubAppInfo{}}, nil, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)
	return srv.(*server)
}

func TestNewServer_RequiresHTTPHandler(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":0"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(nil, config.Server{HTTPAddress: ":0"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_AppliesTimeouts(t *testing.T) {
	srv := newTestServer(t, "127.0.0.1:0")

	assert.Equal(t, 5*time.Second, srv.httpServer.server.ReadTimeout)
	assert.Equal(t, 5*time.Second, srv.httpServer.server.WriteTimeout)
	assert.Equal(t, time.Second, srv.shutdownTimeout)
}

func TestServer_RunServesAndShutsDown(t *testing.T) {
	srv := newTestServer(t, "127.0.0.1:0")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	select {
	case <-srv.listening:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start listening")
	}

	resp, err := http.Get(fmt.Sprintf("http://%s/api/health", srv.addr))
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_RunFailsOnBadAddress(t *testing.T) {
	srv := newTestServer(t, "256.0.0.1:bad")

	err := srv.Run(context.Background())

	assert.Error(t, err)
}
