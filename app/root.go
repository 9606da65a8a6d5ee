// Package app implements the main application commands.
package app

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mreg-project/mreg/internal/config"
	"github.com/mreg-project/mreg/internal/logger"
)

// Viper keys, also readable from MREG_CONFIG and MREG_DEV.
const (
	keyConfig = "config"
	keyDev    = "dev"
	envPrefix = "MREG"
)

var (
	cfg config.Config

	rootCmd = &cobra.Command{
		Use:   "mreg",
		Short: "mreg is a REST api for DNS zone data",
		Long: `mreg is a REST api managing hosts, ip addresses, cnames, txt, naptr, srv and ns records,
subnets, zones, ptr overrides, hinfo presets, labels and change log entries.`,
		Args:         cobra.OnlyValidArgs,
		SilenceUsage: true,
	}
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().String(keyConfig, "./etc/", "Config directory holding main.toml, or a toml file")
	rootCmd.PersistentFlags().Bool(keyDev, false, "Enable dev mode")

	_ = viper.BindPFlag(keyConfig, rootCmd.PersistentFlags().Lookup(keyConfig))
	_ = viper.BindPFlag(keyDev, rootCmd.PersistentFlags().Lookup(keyDev))

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// loadConfig reads the config selected by flags or environment into cfg.
func loadConfig() error {
	var err error

	if cfg, err = config.ReadConfig(viper.GetString(keyConfig)); err != nil {
		return err
	}

	if viper.GetBool(keyDev) {
		cfg.DevMode = true
	}

	return nil
}

// loadConfigAndLogger additionally initialises the global logger.
func loadConfigAndLogger(_ *cobra.Command, _ []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	return logger.Init(cfg.Log)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
