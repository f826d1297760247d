// Package offlinenodes provides the persistence layer for OfflineNode records:
// local copies of remote files and folders, keyed by local path.
//
// # Overview
//
// The package defines a Repository interface and a SQLite-backed
// implementation (SQLiteRepository) over a dbx.DBTX, so the same code runs
// against *sql.DB or inside a transaction.
//
// Lookups by path, fingerprint and base64 handle return a wrapped
// common.ErrorNotFound when nothing matches. When several paths share a
// fingerprint or handle, the most recently downloaded copy wins.
//
// Typical Usage
//
//	repo := offlinenodes.NewSQLiteRepository(db)
//	_ = repo.CreateOrUpdate(ctx, node)
//	n, _ := repo.GetByPath(ctx, "/Offline/report.pdf")
//	_ = repo.DeleteByPath(ctx, n.LocalPath)
//	removed, _ := repo.Clear(ctx)
package offlinenodes
