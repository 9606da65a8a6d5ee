package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	glogger "gorm.io/gorm/logger"

	"github.com/mreg-project/mreg/internal/config"
	"github.com/mreg-project/mreg/internal/db/models"
)

func TestDialector(t *testing.T) {
	for _, engine := range []string{config.EngineMySQL, config.EnginePostgres, config.EngineSQLite} {
		t.Run(engine, func(t *testing.T) {
			d, err := Dialector(&config.Config{DB: config.DB{GormEngine: engine, Name: "mreg"}})
			require.NoError(t, err)
			assert.NotNil(t, d)
		})
	}

	_, err := Dialector(&config.Config{DB: config.DB{GormEngine: "oracle"}})
	require.ErrorIs(t, err, config.ErrUnknownGormEngine)
}

func TestOpenAndMigrate(t *testing.T) {
	cfg := &config.Config{DB: config.DB{
		GormEngine: config.EngineSQLite,
		Name:       filepath.Join(t.TempDir(), "mreg.db"),
		MaxOpen:    1,
	}}

	db, err := Open(cfg, glogger.Default.LogMode(glogger.Silent))
	require.NoError(t, err)

	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, Migrate(db))
	// migrating twice is a no-op
	require.NoError(t, Migrate(db))

	for _, m := range models.All() {
		assert.True(t, db.Migrator().HasTable(m), "%T", m)
	}

	assert.True(t, db.Migrator().HasTable("zone_nameservers"))
}

func TestMigrate_NilDB(t *testing.T) {
	require.Error(t, Migrate(nil))
}
