package daemon

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mreg-project/mreg/internal/config"
	"github.com/mreg-project/mreg/internal/db/models"
	"github.com/mreg-project/mreg/internal/logger"
)

func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		Title:     "mreg test",
		DevMode:   true,
		DB:        config.DB{GormEngine: config.EngineSQLite, Name: filepath.Join(t.TempDir(), "mreg.db"), MaxOpen: 1},
		Webserver: config.Webserver{Port: 8000, URL: "http://localhost:8000"},
		API:       config.API{Prefix: "/api/v1", DefaultPageSize: 10, MaxPageSize: 100},
		Log:       logger.Log{SQL: logger.SQL{LogLevel: "silent"}},
	}
}

func TestNew(t *testing.T) {
	d, err := New(sqliteConfig(t))
	require.NoError(t, err)
	require.NotNil(t, d.webService)

	assert.True(t, d.db.Migrator().HasTable(&models.Host{}))
}

func TestNew_Errors(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, ErrNilConfig)

	cfg := sqliteConfig(t)
	cfg.Log.SQL.LogLevel = "chatty"

	_, err = New(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log.sql config")

	cfg = sqliteConfig(t)
	cfg.DB.GormEngine = "oracle"

	_, err = New(cfg)
	require.ErrorIs(t, err, config.ErrUnknownGormEngine)
}
