// Package models defines the records kept in the local store and the
// collaborator interfaces the store reads remote node identity from.
package models

import (
	"encoding/base64"
	"encoding/binary"
	"time"
)

// RemoteNode identifies a file or folder in remote storage. The store only
// reads its handles.
type RemoteNode interface {
	Handle() uint64
	ParentHandle() uint64
}

// NodeAPI is the access context used to derive node metadata. Fingerprint
// returns "" when the node has none (folders, or files not yet hashed).
type NodeAPI interface {
	Fingerprint(node RemoteNode) string
}

// OfflineNode is a locally cached copy of a remote file or folder.
type OfflineNode struct {
	// LocalPath is the on-disk location and the record key.
	LocalPath string

	// Base64Handle and ParentBase64Handle are the node and parent handles
	// in base64 form (see NodeHandleToBase64).
	Base64Handle       string
	ParentBase64Handle string

	// Fingerprint identifies file content, used to match a remote node to
	// an existing local copy.
	Fingerprint string

	// DownloadedAt is when the copy was stored, millisecond precision, UTC.
	DownloadedAt time.Time
}

// User is a cached user profile.
type User struct {
	Handle    uint64
	FirstName string
	LastName  string
	Email     string
}

// UserPatch is a partial update: only non-nil fields are written.
type UserPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
}

// IsEmpty reports whether the patch changes nothing.
func (p UserPatch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil
}

// ChatDraft is unsent text typed into a chat.
type ChatDraft struct {
	ChatID uint64
	Text   string
}

// NodeHandleSize is the number of significant bytes in a node handle.
const NodeHandleSize = 6

// NodeHandleToBase64 encodes the low 6 bytes of h, little-endian, with the
// URL-safe alphabet and no padding (8 characters).
func NodeHandleToBase64(h uint64) string {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], h)
	return base64.RawURLEncoding.EncodeToString(b[:NodeHandleSize])
}

// Base64ToNodeHandle is the inverse of NodeHandleToBase64.
func Base64ToNodeHandle(s string) (uint64, error) {
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return 0, err
	}
	var b [8]byte
	copy(b[:], raw)
	return binary.LittleEndian.Uint64(b[:]), nil
}

// KeyToDB maps a 64-bit handle onto SQLite's signed INTEGER, keeping every bit.
func KeyToDB(k uint64) int64 {
	return int64(k)
}

// KeyFromDB is the inverse of KeyToDB.
func KeyFromDB(v int64) uint64 {
	return uint64(v)
}
