package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/megastore/internal/config"
	"github.com/dmitrijs2005/megastore/internal/logging"
	"github.com/dmitrijs2005/megastore/internal/store"
	"golang.org/x/term"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

type App struct {
	store       *store.Store
	log         logging.Logger
	reader      *bufio.Reader
	out         io.Writer
	interactive bool
}

// NewApp opens the store described by cfg and wires it to stdin/stdout.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	s, err := store.Open(ctx, store.Options{
		Path:        cfg.DatabasePath,
		BusyTimeout: cfg.BusyTimeout,
		Logger:      log,
	})
	if err != nil {
		log.Error(ctx, "error opening store", "path", cfg.DatabasePath, "error", err)
		return nil, err
	}

	app := newApp(s, log, os.Stdin, os.Stdout)
	app.interactive = isTerminal(int(os.Stdin.Fd()))
	return app, nil
}

func newApp(s *store.Store, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{store: s, log: log, reader: bufio.NewReader(in), out: out}
}

// Run processes commands until EOF, exit or ctx cancellation.
func (a *App) Run(ctx context.Context) {
	a.runREPL(ctx)
}

// Close closes the underlying store.
func (a *App) Close() error {
	return a.store.Close()
}
