package chatdrafts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/megastore/internal/common"
	"github.com/dmitrijs2005/megastore/internal/dbx"
	"github.com/dmitrijs2005/megastore/internal/models"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) CreateOrUpdate(ctx context.Context, d *models.ChatDraft) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO chat_drafts (chat_id, text) VALUES (?, ?)
		ON CONFLICT(chat_id) DO UPDATE SET text = excluded.text
	`, models.KeyToDB(d.ChatID), d.Text)
	if err != nil {
		return fmt.Errorf("failed to upsert chat draft[%d]: %w", d.ChatID, err)
	}
	return nil
}

func (r *SQLiteRepository) GetByChatID(ctx context.Context, chatID uint64) (*models.ChatDraft, error) {
	d := &models.ChatDraft{ChatID: chatID}
	err := r.db.QueryRowContext(ctx, `select text from chat_drafts where chat_id=?`, models.KeyToDB(chatID)).Scan(&d.Text)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("chat draft[%d]: %w", chatID, common.ErrorNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get chat draft[%d]: %w", chatID, err)
	}
	return d, nil
}

func (r *SQLiteRepository) DeleteByChatID(ctx context.Context, chatID uint64) error {
	_, err := r.db.ExecContext(ctx, `delete from chat_drafts where chat_id=?`, models.KeyToDB(chatID))
	if err != nil {
		return fmt.Errorf("failed to delete chat draft[%d]: %w", chatID, err)
	}
	return nil
}
