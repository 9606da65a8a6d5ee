// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// EnvConfigJSON names the environment variable holding a JSON config override.
const EnvConfigJSON = "MREG_CONFIG_JSON"

const (
	defaultShutDownTime = 5
	defaultPrefix       = "/api/v1"
	defaultPageSize     = 20
	defaultMaxPageSize  = 1000
)

// ReadConfig from config file. path is a directory holding main.toml or a file.
func ReadConfig(path string) (Config, error) {
	var (
		c   Config
		err error
	)

	file := configFile(path)

	if _, err = toml.DecodeFile(file, &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	// override it from env
	if configAsJSON := os.Getenv(EnvConfigJSON); configAsJSON != "" {
		c, err = decodeAndMergeConfig(c, configAsJSON)
		if err != nil {
			return c, err
		}
	}

	return c, validate(&c)
}

func configFile(path string) string {
	if path == "" {
		path = "./etc/"
	}

	if strings.HasSuffix(path, ".toml") {
		return path
	}

	return filepath.Join(path, "main.toml")
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read "+EnvConfigJSON)
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate minimal config settings and fill in defaults.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	switch c.DB.GormEngine {
	case EngineMySQL, EnginePostgres, EngineSQLite:
	default:
		return errors.Wrapf(ErrUnknownGormEngine, "%s: %q", invalidErrMessage, c.DB.GormEngine)
	}

	if c.DB.Name == "" {
		return errors.Wrap(ErrEmptyDBName, invalidErrMessage)
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = defaultShutDownTime
	}

	if c.API.Prefix == "" {
		c.API.Prefix = defaultPrefix
	}

	if c.API.MaxPageSize == 0 {
		c.API.MaxPageSize = defaultMaxPageSize
	}

	if c.API.DefaultPageSize == 0 {
		c.API.DefaultPageSize = min(defaultPageSize, c.API.MaxPageSize)
	}

	if c.API.DefaultPageSize > c.API.MaxPageSize {
		return errors.Wrap(ErrInvalidPageSize, invalidErrMessage)
	}

	return nil
}
