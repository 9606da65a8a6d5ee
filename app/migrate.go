package app

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mreg-project/mreg/internal/daemon"
	"github.com/mreg-project/mreg/internal/db"
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(migrateCmd)
}

var migrateCmd = &cobra.Command{
	Use:     "migrate",
	Short:   "Create or update the database tables and exit",
	PreRunE: loadConfigAndLogger,
	RunE: func(_ *cobra.Command, _ []string) error {
		conn, err := daemon.OpenDB(&cfg)
		if err != nil {
			return err
		}

		defer func() {
			_ = db.Close(conn)
		}()

		if err = db.Migrate(conn); err != nil {
			return err
		}

		log.Info().Str("engine", cfg.DB.GormEngine).Msg("database migrated")

		return nil
	},
}
