package repository

import (
	"context"
	"database/sql"
)

// QueryI is the slice of sqlx the sqlite store depends on.
type QueryI interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}
