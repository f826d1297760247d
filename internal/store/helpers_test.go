package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/megastore/internal/models"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

type fakeNode struct {
	handle, parent uint64
}

func (n fakeNode) Handle() uint64       { return n.handle }
func (n fakeNode) ParentHandle() uint64 { return n.parent }

// fakeAPI hands out fingerprints by node handle; unknown handles have none.
type fakeAPI map[uint64]string

func (a fakeAPI) Fingerprint(node models.RemoteNode) string {
	return a[node.Handle()]
}

func openAt(t *testing.T, path string) *Store {
	t.Helper()
	s, err := Open(context.Background(), Options{
		Path:        path,
		BusyTimeout: time.Second,
		Now:         func() time.Time { return fixedNow },
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func openTemp(t *testing.T) *Store {
	t.Helper()
	return openAt(t, filepath.Join(t.TempDir(), "megastore.db"))
}
