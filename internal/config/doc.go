// Package config loads runtime configuration for the local record store and
// the storectl inspection tool.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-d string   path to the SQLite store file
//	-t int      busy timeout (seconds)
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
// Durations may be strings like "5s" or integer nanoseconds. Missing keys
// keep the previous value:
//
//	{
//	  "database_path": "/var/lib/megastore/megastore.db",
//	  "busy_timeout": "5s",
//	  "log_level": "debug"
//	}
package config
