// Package gormlogger routes gorm's logging through zerolog.
package gormlogger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	glogger "gorm.io/gorm/logger"

	"github.com/mreg-project/mreg/internal/logger"
)

// DefaultSlowThreshold is used when the config does not set one.
const DefaultSlowThreshold = 200 * time.Millisecond

// Logger implements gorm's logger.Interface on top of a zerolog logger.
type Logger struct {
	zl                   *zerolog.Logger
	level                glogger.LogLevel
	slowThreshold        time.Duration
	ignoreRecordNotFound bool
	parameterized        bool
}

// ParseLevel maps silent, error, warn and info to gorm log levels. Empty means warn.
func ParseLevel(s string) (glogger.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "silent":
		return glogger.Silent, nil
	case "error":
		return glogger.Error, nil
	case "", "warn":
		return glogger.Warn, nil
	case "info":
		return glogger.Info, nil
	default:
		return glogger.Silent, fmt.Errorf("unknown sql log level %q", s)
	}
}

// New builds a Logger from cfg. A nil zl uses the global zerolog logger.
func New(zl *zerolog.Logger, cfg logger.SQL) (*Logger, error) {
	level, err := ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	if zl == nil {
		zl = &log.Logger
	}

	l := &Logger{
		zl:                   zl,
		level:                level,
		slowThreshold:        DefaultSlowThreshold,
		ignoreRecordNotFound: cfg.IgnoreRecordNotFound,
		parameterized:        cfg.ParameterizedQueries,
	}

	if cfg.SlowThresholdMs > 0 {
		l.slowThreshold = time.Duration(cfg.SlowThresholdMs) * time.Millisecond
	}

	return l, nil
}

// LogMode implements logger.Interface.
func (l *Logger) LogMode(level glogger.LogLevel) glogger.Interface {
	nl := *l
	nl.level = level

	return &nl
}

// Info implements logger.Interface.
func (l *Logger) Info(_ context.Context, msg string, data ...any) {
	if l.level >= glogger.Info {
		l.zl.Info().Str("component", "gorm").Msgf(msg, data...)
	}
}

// Warn implements logger.Interface.
func (l *Logger) Warn(_ context.Context, msg string, data ...any) {
	if l.level >= glogger.Warn {
		l.zl.Warn().Str("component", "gorm").Msgf(msg, data...)
	}
}

// Error implements logger.Interface.
func (l *Logger) Error(_ context.Context, msg string, data ...any) {
	if l.level >= glogger.Error {
		l.zl.Error().Str("component", "gorm").Msgf(msg, data...)
	}
}

// Trace implements logger.Interface. Failed statements log at error, slow ones at
// warn and everything else at info when the level is info.
func (l *Logger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= glogger.Silent {
		return
	}

	elapsed := time.Since(begin)

	var event *zerolog.Event

	switch {
	case err != nil && l.level >= glogger.Error &&
		(!l.ignoreRecordNotFound || !errors.Is(err, glogger.ErrRecordNotFound)):
		event = l.zl.Error().Err(err)
	case l.slowThreshold != 0 && elapsed > l.slowThreshold && l.level >= glogger.Warn:
		event = l.zl.Warn().Dur("threshold", l.slowThreshold)
	case l.level == glogger.Info:
		event = l.zl.Info()
	default:
		return
	}

	sql, rows := fc()

	event.Str("component", "gorm").
		Dur("elapsed", elapsed).
		Str("sql", sql)

	if rows >= 0 {
		event.Int64("rows", rows)
	}

	event.Msg("sql trace")
}

// ParamsFilter hides bound values from traced statements when configured.
func (l *Logger) ParamsFilter(_ context.Context, sql string, params ...any) (string, []any) {
	if l.parameterized {
		return sql, nil
	}

	return sql, params
}
