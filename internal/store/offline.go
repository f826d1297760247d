package store

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/megastore/internal/common"
	"github.com/dmitrijs2005/megastore/internal/models"
)

func fingerprintOf(node models.RemoteNode, api models.NodeAPI) string {
	if api == nil {
		return ""
	}
	return api.Fingerprint(node)
}

// InsertOfflineNode records that node has been saved at path. An existing
// record for path is overwritten.
func (s *Store) InsertOfflineNode(ctx context.Context, node models.RemoteNode, api models.NodeAPI, path string) error {
	if node == nil {
		return fmt.Errorf("insert offline node: nil node: %w", common.ErrConstraintViolation)
	}
	if path == "" {
		return fmt.Errorf("insert offline node: empty path: %w", common.ErrConstraintViolation)
	}

	n := &models.OfflineNode{
		LocalPath:          path,
		Base64Handle:       models.NodeHandleToBase64(node.Handle()),
		ParentBase64Handle: models.NodeHandleToBase64(node.ParentHandle()),
		Fingerprint:        fingerprintOf(node, api),
		DownloadedAt:       s.now().UTC().Truncate(time.Millisecond),
	}
	if err := s.nodes.CreateOrUpdate(ctx, n); err != nil {
		return err
	}

	s.log.Debug(ctx, "offline node stored", "path", path, "handle", n.Base64Handle)
	return nil
}

// FetchOfflineNode returns the record stored under path, or nil.
func (s *Store) FetchOfflineNode(ctx context.Context, path string) (*models.OfflineNode, error) {
	return absent(s.nodes.GetByPath(ctx, path))
}

// OfflineNodeFor finds the local copy of node. Nodes with a fingerprint are
// matched on it, so a copy whose content no longer matches the remote node is
// not returned; nodes without one are matched on their handle.
func (s *Store) OfflineNodeFor(ctx context.Context, node models.RemoteNode, api models.NodeAPI) (*models.OfflineNode, error) {
	if node == nil {
		return nil, nil
	}
	if api == nil {
		s.log.Warn(ctx, "no node api, matching offline node by handle only", "handle", node.Handle())
	}

	if fp := fingerprintOf(node, api); fp != "" {
		return absent(s.nodes.GetByFingerprint(ctx, fp))
	}
	return absent(s.nodes.GetByHandle(ctx, models.NodeHandleToBase64(node.Handle())))
}

// ListOfflineNodes returns every record ordered by path.
func (s *Store) ListOfflineNodes(ctx context.Context) ([]*models.OfflineNode, error) {
	return s.nodes.GetAll(ctx)
}

// RemoveOfflineNode deletes the record. Nil or already removed records are ignored.
func (s *Store) RemoveOfflineNode(ctx context.Context, node *models.OfflineNode) error {
	if node == nil {
		return nil
	}
	return s.nodes.DeleteByPath(ctx, node.LocalPath)
}

// RemoveAllOfflineNodes deletes every OfflineNode record.
func (s *Store) RemoveAllOfflineNodes(ctx context.Context) error {
	removed, err := s.nodes.Clear(ctx)
	if err != nil {
		return err
	}

	s.log.Info(ctx, "offline nodes cleared", "removed", removed)
	return nil
}
