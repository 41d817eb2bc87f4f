package postgres

import (
	"context"
	"database/sql"
)

// Queryer é satisfeito por *sqlx.DB e *sqlx.Tx
type Queryer interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}
