// Package filex holds small filesystem helpers used when opening the store.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureParentDir creates the directory that will contain the database named
// by dsn, if missing. dsn is a plain path or a "file:" URI; in-memory SQLite
// DSNs (":memory:" or "file:...mode=memory...") are left alone.
func EnsureParentDir(dsn string) error {
	if IsMemoryDSN(dsn) {
		return nil
	}

	dir := filepath.Dir(DatabasePath(dsn))
	if dir == "." || dir == "" {
		return nil
	}

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return nil
}

// IsMemoryDSN reports whether dsn refers to an in-memory SQLite database.
func IsMemoryDSN(dsn string) bool {
	if dsn == ":memory:" {
		return true
	}
	return strings.HasPrefix(dsn, "file:") && strings.Contains(dsn, "mode=memory")
}

// DatabasePath returns the filesystem path of a SQLite DSN. For "file:" URIs
// the scheme, the optional empty or localhost authority and the query are
// stripped; plain paths are returned unchanged.
func DatabasePath(dsn string) string {
	rest, ok := strings.CutPrefix(dsn, "file:")
	if !ok {
		return dsn
	}

	rest, _, _ = strings.Cut(rest, "#")
	rest, _, _ = strings.Cut(rest, "?")

	if after, ok := strings.CutPrefix(rest, "//"); ok {
		if i := strings.IndexByte(after, '/'); i >= 0 {
			rest = after[i:]
		} else {
			rest = ""
		}
	}
	return rest
}
