package store

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/megastore/internal/models"
)

// UpsertChatDraft sets the draft for chatID. Blank text deletes it.
func (s *Store) UpsertChatDraft(ctx context.Context, chatID uint64, text string) error {
	if strings.TrimSpace(text) == "" {
		return s.drafts.DeleteByChatID(ctx, chatID)
	}
	return s.drafts.CreateOrUpdate(ctx, &models.ChatDraft{ChatID: chatID, Text: text})
}

// FetchChatDraft returns the draft for chatID, or nil.
func (s *Store) FetchChatDraft(ctx context.Context, chatID uint64) (*models.ChatDraft, error) {
	return absent(s.drafts.GetByChatID(ctx, chatID))
}
