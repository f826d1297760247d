package offlinenodes

import (
	"context"

	"github.com/dmitrijs2005/megastore/internal/models"
)

// Repository describes CRUD operations for OfflineNode records.
type Repository interface {
	// CreateOrUpdate inserts a node or overwrites the one stored under the
	// same LocalPath.
	CreateOrUpdate(ctx context.Context, node *models.OfflineNode) error

	// GetByPath returns the node stored under path.
	GetByPath(ctx context.Context, path string) (*models.OfflineNode, error)

	// GetByFingerprint returns the newest node with the given fingerprint.
	GetByFingerprint(ctx context.Context, fingerprint string) (*models.OfflineNode, error)

	// GetByHandle returns the newest node with the given base64 handle.
	GetByHandle(ctx context.Context, base64Handle string) (*models.OfflineNode, error)

	// GetAll returns every node ordered by path.
	GetAll(ctx context.Context) ([]*models.OfflineNode, error)

	// DeleteByPath removes the node stored under path. Missing rows are not an error.
	DeleteByPath(ctx context.Context, path string) error

	// Clear removes every node and reports how many were removed.
	Clear(ctx context.Context) (int64, error)
}
