// Package db opens the configured database and migrates the record models.
package db

import (
	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"github.com/mreg-project/mreg/internal/config"
	"github.com/mreg-project/mreg/internal/db/dsn"
	"github.com/mreg-project/mreg/internal/db/models"
)

// Dialector returns the gorm driver for the configured engine.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DB.GormEngine {
	case config.EngineMySQL:
		return gormmysql.Open(dsn.Create(cfg)), nil
	case config.EnginePostgres:
		return gormpostgres.Open(dsn.Create(cfg)), nil
	case config.EngineSQLite:
		return sqlite.Open(dsn.Create(cfg)), nil
	default:
		return nil, errors.Wrapf(config.ErrUnknownGormEngine, "engine %q", cfg.DB.GormEngine)
	}
}

// Open connects to the configured database. gl may be nil to keep gorm's default logger.
func Open(cfg *config.Config, gl glogger.Interface) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	gormCfg := &gorm.Config{TranslateError: true}
	if gl != nil {
		gormCfg.Logger = gl
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get database handle")
	}

	if cfg.DB.MaxOpen > 0 {
		sqlDB.SetMaxOpenConns(cfg.DB.MaxOpen)
	}

	if cfg.DB.MaxIdle > 0 {
		sqlDB.SetMaxIdleConns(cfg.DB.MaxIdle)
	}

	return db, nil
}

// Migrate creates or updates the tables of every record model.
func Migrate(db *gorm.DB) error {
	if db == nil {
		return errors.New("database connection is nil")
	}

	if err := db.AutoMigrate(models.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate database")
	}

	return nil
}

// Close closes the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err //nolint:wrapcheck
	}

	return sqlDB.Close() //nolint:wrapcheck
}
