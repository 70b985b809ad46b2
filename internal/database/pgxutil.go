package database

import (
	"context"
	"fmt"

	"github.com/andreferraz/homecare-backend/internal/config"
	"github.com/georgysavva/scany/pgxscan"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/xlab/closer"
)

// pgxUtil wraps a pgxpool so repositories only see the Queryable interface.
type pgxUtil struct {
	pool *pgxpool.Pool
}

// NewPGX connects to postgres and binds pool shutdown to process exit.
func NewPGX(ctx context.Context) (PGX, error) {
	pool, err := pgxpool.Connect(ctx, config.PostgresURL())
	if err != nil {
		return nil, err
	}

	closer.Bind(pool.Close)

	return &pgxUtil{pool: pool}, nil
}

func (p *pgxUtil) BeginTx(ctx context.Context, txOptions *pgx.TxOptions) (Tx, error) {
	var txOpts pgx.TxOptions
	if txOptions != nil {
		txOpts = *txOptions
	}

	tx, err := p.pool.BeginTx(ctx, txOpts)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}

	return &txUtil{pgxTx: tx}, nil
}

func (p *pgxUtil) ExecRaw(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error) {
	return p.pool.Exec(ctx, sql, arguments...)
}

func (p *pgxUtil) Exec(ctx context.Context, sqlizer Sqlizer) (pgconn.CommandTag, error) {
	return execFn(ctx, p.pool, sqlizer)
}

// Select scans multiple rows into a slice. No rows scans nil.
func (p *pgxUtil) Select(ctx context.Context, dst interface{}, sqlizer Sqlizer) error {
	return selectFn(ctx, p.pool, dst, sqlizer)
}

// Get scans exactly one row. No rows returns pgx.ErrNoRows.
func (p *pgxUtil) Get(ctx context.Context, dst interface{}, sqlizer Sqlizer) error {
	return getFn(ctx, p.pool, dst, sqlizer)
}

func (p *pgxUtil) GetPool(ctx context.Context) *pgxpool.Pool {
	return p.pool
}

type txUtil struct {
	pgxTx pgx.Tx
}

func (t *txUtil) ExecRaw(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error) {
	return t.pgxTx.Exec(ctx, sql, arguments...)
}

func (t *txUtil) Exec(ctx context.Context, sqlizer Sqlizer) (pgconn.CommandTag, error) {
	return execFn(ctx, t.pgxTx, sqlizer)
}

func (t *txUtil) Select(ctx context.Context, dst interface{}, sqlizer Sqlizer) error {
	return selectFn(ctx, t.pgxTx, dst, sqlizer)
}

func (t *txUtil) Get(ctx context.Context, dst interface{}, sqlizer Sqlizer) error {
	return getFn(ctx, t.pgxTx, dst, sqlizer)
}

func (t *txUtil) Commit(ctx context.Context) error {
	return t.pgxTx.Commit(ctx)
}

func (t *txUtil) Rollback(ctx context.Context) error {
	return t.pgxTx.Rollback(ctx)
}

func execFn(ctx context.Context, e execer, sqlizer Sqlizer) (pgconn.CommandTag, error) {
	query, args, err := sqlizer.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ToSql: %w", err)
	}

	return e.Exec(ctx, query, args...)
}

func selectFn(ctx context.Context, q pgxscan.Querier, dst interface{}, sqlizer Sqlizer) error {
	query, args, err := sqlizer.ToSql()
	if err != nil {
		return fmt.Errorf("ToSql: %w", err)
	}

	return pgxscan.Select(ctx, q, dst, query, args...)
}

func getFn(ctx context.Context, q pgxscan.Querier, dst interface{}, sqlizer Sqlizer) error {
	query, args, err := sqlizer.ToSql()
	if err != nil {
		return fmt.Errorf("ToSql: %w", err)
	}

	return pgxscan.Get(ctx, q, dst, query, args...)
}
