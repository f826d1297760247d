package chatdrafts

import (
	"context"
	"database/sql"
	"math"
	"testing"

	"github.com/dmitrijs2005/megastore/internal/common"
	"github.com/dmitrijs2005/megastore/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE chat_drafts (
  chat_id INTEGER PRIMARY KEY,
  text    TEXT NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestCreateOrUpdate_LatestTextWins(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.CreateOrUpdate(ctx, &models.ChatDraft{ChatID: 10, Text: "hel"}))
	require.NoError(t, r.CreateOrUpdate(ctx, &models.ChatDraft{ChatID: 10, Text: "hello there"}))

	got, err := r.GetByChatID(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, &models.ChatDraft{ChatID: 10, Text: "hello there"}, got)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM chat_drafts`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestGetByChatID_NotFound(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	got, err := r.GetByChatID(context.Background(), 1)
	require.ErrorIs(t, err, common.ErrorNotFound)
	require.Nil(t, got)
}

func TestHighBitChatID_RoundTrips(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	var id uint64 = math.MaxUint64
	require.NoError(t, r.CreateOrUpdate(ctx, &models.ChatDraft{ChatID: id, Text: "x"}))

	got, err := r.GetByChatID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ChatID)
}

func TestDeleteByChatID_Idempotent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.CreateOrUpdate(ctx, &models.ChatDraft{ChatID: 3, Text: "bye"}))
	require.NoError(t, r.DeleteByChatID(ctx, 3))

	_, err := r.GetByChatID(ctx, 3)
	require.ErrorIs(t, err, common.ErrorNotFound)

	require.NoError(t, r.DeleteByChatID(ctx, 3))
}

func TestErrorsWrapped_WhenDBClosed(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Close())

	require.ErrorContains(t, r.CreateOrUpdate(ctx, &models.ChatDraft{ChatID: 1}), "failed to upsert chat draft[1]")
	_, err := r.GetByChatID(ctx, 1)
	require.ErrorContains(t, err, "failed to get chat draft[1]")
	require.ErrorContains(t, r.DeleteByChatID(ctx, 1), "failed to delete chat draft[1]")
}
