// Package store is the local record store: a facade over an on-device SQLite
// database holding offline file nodes, cached user profiles and chat drafts.
//
// # Lifecycle
//
// Open creates the parent directory, opens the database, applies the
// embedded goose migrations and makes sure the store has a persistent UUID.
// Reopening an existing file is safe and keeps both data and UUID. The
// returned *Store belongs to the composition root, which passes it to
// whoever needs it and calls Close on shutdown.
//
// # Absence and errors
//
// Fetch* and OfflineNodeFor return (nil, nil) when no record matches; a
// miss is not an error. Failures to open or migrate wrap
// common.ErrStoreUnavailable, invalid keys wrap common.ErrConstraintViolation
// and UpdateUser on an unknown handle wraps common.ErrorNotFound.
//
// # Keys
//
// Every insert is an upsert: at most one record exists per key. An
// UpsertChatDraft with blank text removes the draft instead.
//
// # Concurrency
//
// A Store is safe for concurrent use. SQLite allows a single writer, so the
// pool is limited to one connection and callers queue on it; Batch holds that
// connection for the duration of the transaction.
package store
