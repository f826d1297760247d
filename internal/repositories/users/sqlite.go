package users

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

func (r *SQLiteRepository) CreateOrUpdate(ctx context.Context, u *models.User) error {
	query := ` INSERT INTO users (handle, first_name, last_name, email)
			values (?, ?, ?, ?)
			ON CONFLICT(handle) DO UPDATE SET first_name = excluded.first_name,
				last_name = excluded.last_name,
				email = excluded.email
	`
	_, err := r.db.ExecContext(ctx, query, models.KeyToDB(u.Handle), u.FirstName, u.LastName, u.Email)
	if err != nil {
		return fmt.Errorf("failed to upsert user[%d]: %w", u.Handle, err)
	}
	return nil
}

func nullable(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// Update relies on COALESCE so absent patch fields keep their stored value.
// SQLite counts matched rows, so an empty patch on an existing user still
// reports one affected row.
func (r *SQLiteRepository) Update(ctx context.Context, handle uint64, p models.UserPatch) error {
	query := `update users set first_name = coalesce(?, first_name),
				last_name = coalesce(?, last_name),
				email = coalesce(?, email)
			where handle=?`
	res, err := r.db.ExecContext(ctx, query,
		nullable(p.FirstName), nullable(p.LastName), nullable(p.Email), models.KeyToDB(handle))
	if err != nil {
		return fmt.Errorf("failed to update user[%d]: %w", handle, err)
	}

	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return fmt.Errorf("user[%d]: %w", handle, common.ErrorNotFound)
	}
	return nil
}

func (r *SQLiteRepository) GetByHandle(ctx context.Context, handle uint64) (*models.User, error) {
	query := `select handle, first_name, last_name, email from users where handle=?`

	var key int64
	u := &models.User{}
	err := r.db.QueryRowContext(ctx, query, models.KeyToDB(handle)).Scan(&key, &u.FirstName, &u.LastName, &u.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user[%d]: %w", handle, common.ErrorNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user[%d]: %w", handle, err)
	}

	u.Handle = models.KeyFromDB(key)
	return u, nil
}
