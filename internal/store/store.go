package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/megastore/internal/common"
	"github.com/dmitrijs2005/megastore/internal/dbx"
	"github.com/dmitrijs2005/megastore/internal/filex"
	"github.com/dmitrijs2005/megastore/internal/logging"
	"github.com/dmitrijs2005/megastore/internal/repositories/chatdrafts"
	"github.com/dmitrijs2005/megastore/internal/repositories/metadata"
	"github.com/dmitrijs2005/megastore/internal/repositories/offlinenodes"
	"github.com/dmitrijs2005/megastore/internal/repositories/users"
	"github.com/google/uuid"

	_ "modernc.org/sqlite"
)

// Options configures Open. Only Path is required.
type Options struct {
	// Path is the SQLite file, a "file:" URI, or an in-memory DSN.
	Path string

	// BusyTimeout is how long a statement waits on a locked database.
	// Zero keeps SQLite's default of failing immediately.
	BusyTimeout time.Duration

	// Logger receives store diagnostics. Nil discards them.
	Logger logging.Logger

	// Now stamps OfflineNode.DownloadedAt. Nil means time.Now.
	Now func() time.Time
}

// Store is the local record store. See the package doc for its contract.
type Store struct {
	db   *sql.DB
	inTx bool

	path string
	id   string
	log  logging.Logger
	now  func() time.Time

	nodes  offlinenodes.Repository
	users  users.Repository
	drafts chatdrafts.Repository
	meta   metadata.Repository
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", common.ErrStoreUnavailable, op, err)
}

// Open opens or creates the store at opts.Path and brings its schema up to date.
func Open(ctx context.Context, opts Options) (*Store, error) {
	if opts.Path == "" {
		return nil, unavailable("open", errors.New("empty database path"))
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	if err := filex.EnsureParentDir(opts.Path); err != nil {
		return nil, unavailable("prepare directory", err)
	}

	db, err := sql.Open("sqlite", opts.Path)
	if err != nil {
		return nil, unavailable("open "+opts.Path, err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		fmt.Sprintf("PRAGMA busy_timeout = %d", opts.BusyTimeout.Milliseconds()),
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, unavailable(p, err)
		}
	}

	s := newStore(db, opts.Path, opts.Logger.With("component", "store"), opts.Now)
	if err := s.Configure(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	s.log.Info(ctx, "store opened", "path", s.path, "store_id", s.id)
	return s, nil
}

func newStore(db *sql.DB, path string, log logging.Logger, now func() time.Time) *Store {
	s := &Store{db: db, path: path, log: log, now: now}
	s.bind(db)
	return s
}

func (s *Store) bind(db dbx.DBTX) {
	s.nodes = offlinenodes.NewSQLiteRepository(db)
	s.users = users.NewSQLiteRepository(db)
	s.drafts = chatdrafts.NewSQLiteRepository(db)
	s.meta = metadata.NewSQLiteRepository(db)
}

// Configure applies pending migrations and loads (or creates) the store UUID.
// Open already calls it; calling it again is harmless.
func (s *Store) Configure(ctx context.Context) error {
	if s.inTx {
		return errors.New("configure is not allowed inside a batch")
	}

	if err := RunMigrations(ctx, s.db, s.log); err != nil {
		return unavailable("migrate", err)
	}

	id, err := s.meta.SetIfAbsent(ctx, common.StoreIDKey, []byte(uuid.NewString()))
	if err != nil {
		return unavailable("store id", err)
	}
	s.id = string(id)
	return nil
}

// ID returns the store UUID, stable across reopenings of the same file.
func (s *Store) ID() string {
	return s.id
}

// Path returns the database location the store was opened with.
func (s *Store) Path() string {
	return s.path
}

// Close releases the database. The store must not be used afterwards.
func (s *Store) Close() error {
	if s.inTx {
		return errors.New("close is not allowed inside a batch")
	}
	return s.db.Close()
}

// Batch runs fn against a view of the store bound to a single transaction:
// either every change fn makes is kept or none is. Batch inside a batch
// reuses the outer transaction.
func (s *Store) Batch(ctx context.Context, fn func(ctx context.Context, tx *Store) error) error {
	if s.inTx {
		return fn(ctx, s)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		view := &Store{db: s.db, inTx: true, path: s.path, id: s.id, log: s.log, now: s.now}
		view.bind(tx)
		return fn(ctx, view)
	})
}

// absent turns a repository miss into the (nil, nil) result of the facade.
func absent[T any](v *T, err error) (*T, error) {
	if errors.Is(err, common.ErrorNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}
