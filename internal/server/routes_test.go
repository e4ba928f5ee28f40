package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"barkbook/internal/config"
	"barkbook/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouteTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.Config{
		JWTSecret:             "test_secret",
		AvatarDir:             t.TempDir(),
		AvatarMaxUploadSizeMB: 5,
	}
	s := &Server{
		config:        cfg,
		avatarService: service.NewAvatarService(cfg),
	}

	app := fiber.New()
	s.SetupRoutes(app)
	return app
}

func TestAPIRoot(t *testing.T) {
	app := newRouteTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body["message"], "Barkbook API")
}

func TestLivenessRoute(t *testing.T) {
	app := newRouteTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
