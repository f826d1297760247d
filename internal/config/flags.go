package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/megastore/internal/flagx"
)

// parseFlags overlays cfg with -d, -t and -l. Only those flags are picked out
// of os.Args, so flags owned by other components do not break parsing.
// Malformed values panic.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the store database file")
	busyTimeout := fs.Int("t", int(cfg.BusyTimeout.Seconds()), "busy timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// -t is whole seconds; a sub-second JSON value survives unless -t is given.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.BusyTimeout = time.Duration(*busyTimeout) * time.Second
		}
	})
}
