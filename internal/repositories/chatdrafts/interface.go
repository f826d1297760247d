package chatdrafts

import (
	"context"

	"github.com/dmitrijs2005/megastore/internal/models"
)

// Repository persists chat drafts keyed by chat id.
type Repository interface {
	// CreateOrUpdate inserts or overwrites the draft for draft.ChatID.
	CreateOrUpdate(ctx context.Context, draft *models.ChatDraft) error

	// GetByChatID returns the draft or a wrapped common.ErrorNotFound.
	GetByChatID(ctx context.Context, chatID uint64) (*models.ChatDraft, error)

	// DeleteByChatID removes the draft. Missing rows are not an error.
	DeleteByChatID(ctx context.Context, chatID uint64) error
}
