// Package daemon wires the database and the api server into a running process.
package daemon

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/mreg-project/mreg/internal/config"
	"github.com/mreg-project/mreg/internal/db"
	"github.com/mreg-project/mreg/internal/logger/adapter/gormlogger"
	"github.com/mreg-project/mreg/internal/web"
)

// ErrNilConfig is returned by New without a config.
var ErrNilConfig = errors.New("config is nil")

// Daemon represents the main application daemon.
type Daemon struct {
	db         *gorm.DB
	webService *web.Service
}

// OpenDB connects to the configured database with SQL logging routed through zerolog.
func OpenDB(cfg *config.Config) (*gorm.DB, error) {
	gl, err := gormlogger.New(nil, cfg.Log.SQL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid log.sql config")
	}

	return db.Open(cfg, gl)
}

// New opens and migrates the database and builds the web service.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	conn, err := OpenDB(cfg)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(conn); err != nil {
		return nil, err
	}

	webService, err := web.New(cfg, conn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create web service")
	}

	return &Daemon{db: conn, webService: webService}, nil
}

// Start serves until SIGINT or SIGTERM and shuts down gracefully.
func (d *Daemon) Start() error {
	errC := make(chan error, 1)

	go func() {
		errC <- d.webService.Start()
	}()

	go d.webService.WaitShutdown()

	err := <-errC

	if cErr := db.Close(d.db); cErr != nil {
		log.Error().Err(cErr).Msg("failed to close database")
	}

	return err
}
