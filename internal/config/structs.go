package config

import (
	"github.com/mreg-project/mreg/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	Title     string
	DB        DB
	Log       logger.Log
	Webserver Webserver
	API       API
}

// Webserver implement webserver settings.
type Webserver struct {
	DisableRecover bool   // disable recover middleware
	Port           int    // listening port for the webserver
	ShutDownTime   int    // wait time for shutdown in seconds
	URL            string // base url for the webserver
	BodyLimit      int    // max request body size in bytes
}

// API holds the REST api settings.
type API struct {
	Prefix          string // route prefix, for example /api/v1
	DefaultPageSize int    // list page size when the client does not send one
	MaxPageSize     int    // upper bound of the page_size query parameter
	Metrics         bool   // serve /metrics
}
