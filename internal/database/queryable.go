package database

import (
	"context"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// PGX exposes the base database operations plus transaction support.
type PGX interface {
	Queryable
	GetPool(ctx context.Context) *pgxpool.Pool
	BeginTx(ctx context.Context, txOptions *pgx.TxOptions) (Tx, error)
}

type Tx interface {
	Queryable
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Queryable is what repositories receive: either the pool or a transaction.
type Queryable interface {
	Exec(ctx context.Context, sqlizer Sqlizer) (pgconn.CommandTag, error)
	Get(ctx context.Context, dst interface{}, sqlizer Sqlizer) error
	Select(ctx context.Context, dst interface{}, sqlizer Sqlizer) error
	ExecRaw(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
}

type execer interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
}

// Sqlizer is satisfied by every squirrel builder.
type Sqlizer interface {
	ToSql() (sql string, args []interface{}, err error)
}
