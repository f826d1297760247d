package config

import (
	"time"

	"github.com/dmitrijs2005/megastore/internal/common"
)

// Config holds runtime settings for the local record store.
//
// Fields:
//   - DatabasePath: location of the SQLite file (or an in-memory DSN).
//   - BusyTimeout: how long SQLite waits on a locked database before failing.
//   - LogLevel: one of debug, info, warn, error.
type Config struct {
	DatabasePath string
	BusyTimeout  time.Duration
	LogLevel     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = common.DefaultDatabaseFile
	c.BusyTimeout = 5 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
