package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/megastore/internal/flagx"
	"github.com/dmitrijs2005/megastore/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer fields
// tell "absent" apart from "zero".
type JsonConfig struct {
	DatabasePath *string         `json:"database_path"`
	BusyTimeout  *timex.Duration `json:"busy_timeout"`
	LogLevel     *string         `json:"log_level"`
}

// parseJson overlays cfg with the JSON file named by -c/-config, if any.
// Read or decode errors panic; the caller decides whether to recover.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.BusyTimeout != nil {
		cfg.BusyTimeout = jc.BusyTimeout.Duration
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
