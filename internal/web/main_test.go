package web

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mreg-project/mreg/internal/config"
	"github.com/mreg-project/mreg/internal/db/dbtest"
	"github.com/mreg-project/mreg/internal/web/handler"
)

func testConfig() *config.Config {
	return &config.Config{
		Title:     "mreg test",
		Webserver: config.Webserver{Port: 8000, URL: "http://localhost:8000"},
		API:       config.API{Prefix: "/api/v1", DefaultPageSize: 10, MaxPageSize: 100, Metrics: true},
	}
}

func get(t *testing.T, app *fiber.App, path string) (int, string) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil), -1)
	require.NoError(t, err)

	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(body)
}

func TestNew_Nil(t *testing.T) {
	_, err := New(nil, nil)
	require.ErrorIs(t, err, handler.ErrNilACD)
}

func TestNew_Routes(t *testing.T) {
	s, err := New(testConfig(), dbtest.Open(t))
	require.NoError(t, err)

	status, body := get(t, s.App, handler.CheckAlivePath)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "OK", body)

	status, body = get(t, s.App, handler.MetricsPath)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "go_goroutines")

	status, body = get(t, s.App, "/api/v1/hosts/")
	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, strings.HasPrefix(body, `{"count":0`), body)

	status, _ = get(t, s.App, "/hosts/")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestNew_MetricsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.API.Metrics = false

	s, err := New(cfg, dbtest.Open(t))
	require.NoError(t, err)

	status, _ := get(t, s.App, handler.MetricsPath)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestDrain_FailsCheckAlive(t *testing.T) {
	s, err := New(testConfig(), dbtest.Open(t))
	require.NoError(t, err)
	require.True(t, s.Alive())

	s.drain()

	assert.False(t, s.Alive())

	status, _ := get(t, s.App, handler.CheckAlivePath)
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
}

func TestDrain_FastShutdownInDevMode(t *testing.T) {
	cfg := testConfig()
	cfg.DevMode = true

	s, err := New(cfg, dbtest.Open(t))
	require.NoError(t, err)

	s.drain()
	assert.True(t, s.Alive())
}
