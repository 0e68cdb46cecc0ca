// Package config loads logger settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/philipp01105/emlog/core"
	"github.com/philipp01105/emlog/faultlog"
	"github.com/philipp01105/emlog/logger"
)

// Environment variables read by Load
const (
	EnvMode        = "EMLOG_MODE"
	EnvAppName     = "EMLOG_APP_NAME"
	EnvLevel       = "EMLOG_LEVEL"
	EnvBufferSize  = "EMLOG_BUFFER_SIZE"
	EnvSeparator   = "EMLOG_SEPARATOR"
	EnvColor       = "EMLOG_COLOR"
	EnvLogFile     = "EMLOG_LOG_FILE"
	EnvSentryDSN   = "EMLOG_SENTRY_DSN"
	EnvMetricsAddr = "EMLOG_METRICS_ADDR"
)

// maxBufferSize bounds EMLOG_BUFFER_SIZE
const maxBufferSize = 1 << 20

// Config holds logger settings
type Config struct {
	Mode        logger.Mode
	AppName     string
	Level       core.Level
	BufferSize  int
	Separator   byte
	Color       bool
	LogFile     string
	SentryDSN   string
	MetricsAddr string
}

// Default returns the settings used when nothing is configured
func Default() Config {
	return Config{
		Mode:       logger.CompiledMode,
		AppName:    logger.DefaultAppName,
		Level:      logger.DefaultLevel,
		BufferSize: core.DefaultCapacity,
		Separator:  faultlog.DefaultSeparator,
		Color:      true,
	}
}

// Load reads the given .env files (default: ".env") into the environment,
// without overriding variables already set, then builds a Config from the
// EMLOG_* variables. Missing files are ignored. Every invalid variable is
// reported in the returned error.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(errors.Cause(err)) {
			return nil, errors.Wrapf(err, "config: reading %s", f)
		}
	}

	cfg := Default()
	var errs error

	if v, ok := lookup(EnvMode); ok {
		m, err := logger.ParseMode(v)
		errs = multierr.Append(errs, wrapVar(err, EnvMode))
		cfg.Mode = m
	}
	if v, ok := lookup(EnvAppName); ok {
		cfg.AppName = v
	}
	if v, ok := lookup(EnvLevel); ok {
		l, err := core.ParseLevel(v)
		if err != nil {
			errs = multierr.Append(errs, wrapVar(err, EnvLevel))
		} else {
			cfg.Level = l
		}
	}
	if v, ok := lookup(EnvBufferSize); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = multierr.Append(errs, wrapVar(err, EnvBufferSize))
		} else {
			cfg.BufferSize = n
		}
	}
	if v, ok := lookup(EnvSeparator); ok {
		if len(v) != 1 {
			errs = multierr.Append(errs, errors.Errorf("config: %s must be a single byte, got %q", EnvSeparator, v))
		} else {
			cfg.Separator = v[0]
		}
	}
	if v, ok := lookup(EnvColor); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = multierr.Append(errs, wrapVar(err, EnvColor))
		} else {
			cfg.Color = b
		}
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.LogFile = v
	}
	if v, ok := lookup(EnvSentryDSN); ok {
		cfg.SentryDSN = v
	}
	if v, ok := lookup(EnvMetricsAddr); ok {
		cfg.MetricsAddr = v
	}

	errs = multierr.Append(errs, cfg.Validate())
	if errs != nil {
		return nil, errs
	}
	return &cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	var errs error
	if c.BufferSize <= 0 || c.BufferSize > maxBufferSize {
		errs = multierr.Append(errs, errors.Errorf("config: buffer size %d out of range 1..%d", c.BufferSize, maxBufferSize))
	}
	if c.Separator == 0 || (c.Separator >= '0' && c.Separator <= '9') {
		errs = multierr.Append(errs, errors.Errorf("config: separator %q cannot delimit records", c.Separator))
	}
	if c.Mode > logger.ModeFaultLog {
		errs = multierr.Append(errs, errors.Errorf("config: unknown mode %d", c.Mode))
	}
	return errs
}

// Builder returns a logger builder preset with the configuration
func (c *Config) Builder() *logger.Builder {
	return logger.NewBuilder().
		WithMode(c.Mode).
		WithAppName(c.AppName).
		WithLevel(c.Level).
		WithCapacity(c.BufferSize).
		WithSeparator(c.Separator).
		WithColor(c.Color)
}

func lookup(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	return v, v != ""
}

func wrapVar(err error, key string) error {
	return errors.Wrapf(err, "config: %s", key)
}
