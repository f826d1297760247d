package offlinenodes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/megastore/internal/common"
	"github.com/dmitrijs2005/megastore/internal/dbx"
	"github.com/dmitrijs2005/megastore/internal/models"
)

const selectColumns = `select local_path, base64_handle, parent_base64_handle, fingerprint, downloaded_at from offline_nodes`

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNode(row scanner) (*models.OfflineNode, error) {
	n := &models.OfflineNode{}
	var downloadedAt int64
	if err := row.Scan(&n.LocalPath, &n.Base64Handle, &n.ParentBase64Handle, &n.Fingerprint, &downloadedAt); err != nil {
		return nil, err
	}
	n.DownloadedAt = time.UnixMilli(downloadedAt).UTC()
	return n, nil
}

// CreateOrUpdate upserts a node by local_path.
func (r *SQLiteRepository) CreateOrUpdate(ctx context.Context, n *models.OfflineNode) error {
	query := ` INSERT INTO offline_nodes (local_path, base64_handle, parent_base64_handle, fingerprint, downloaded_at)
			values (?, ?, ?, ?, ?)
			ON CONFLICT(local_path) DO UPDATE SET base64_handle = excluded.base64_handle,
				parent_base64_handle = excluded.parent_base64_handle,
				fingerprint = excluded.fingerprint,
				downloaded_at = excluded.downloaded_at
	`
	_, err := r.db.ExecContext(ctx, query,
		n.LocalPath, n.Base64Handle, n.ParentBase64Handle, n.Fingerprint, n.DownloadedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to upsert offline node[%s]: %w", n.LocalPath, err)
	}
	return nil
}

func (r *SQLiteRepository) getOne(ctx context.Context, what, query string, arg any) (*models.OfflineNode, error) {
	n, err := scanNode(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("offline node by %s: %w", what, common.ErrorNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get offline node by %s: %w", what, err)
	}
	return n, nil
}

func (r *SQLiteRepository) GetByPath(ctx context.Context, path string) (*models.OfflineNode, error) {
	return r.getOne(ctx, "path", selectColumns+` where local_path=?`, path)
}

func (r *SQLiteRepository) GetByFingerprint(ctx context.Context, fingerprint string) (*models.OfflineNode, error) {
	return r.getOne(ctx, "fingerprint",
		selectColumns+` where fingerprint=? order by downloaded_at desc limit 1`, fingerprint)
}

func (r *SQLiteRepository) GetByHandle(ctx context.Context, base64Handle string) (*models.OfflineNode, error) {
	return r.getOne(ctx, "handle",
		selectColumns+` where base64_handle=? order by downloaded_at desc limit 1`, base64Handle)
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]*models.OfflineNode, error) {
	rows, err := r.db.QueryContext(ctx, selectColumns+` order by local_path`)
	if err != nil {
		return nil, fmt.Errorf("failed to select offline nodes: %w", err)
	}
	defer rows.Close()

	var result []*models.OfflineNode
	for rows.Next() {
		n, err := scanNode(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan offline node row: %w", err)
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate offline node rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) DeleteByPath(ctx context.Context, path string) error {
	_, err := r.db.ExecContext(ctx, `delete from offline_nodes where local_path=?`, path)
	if err != nil {
		return fmt.Errorf("failed to delete offline node[%s]: %w", path, err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `delete from offline_nodes`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear offline nodes: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}
