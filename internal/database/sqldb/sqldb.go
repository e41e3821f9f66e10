// Package sqldb adapts a database/sql connection to the database.DB
// interface. Used by tests to drive repositories against sqlmock.
package sqldb

import (
	"context"
	"database/sql"
	"fmt"

	"portfolio-api/internal/database"
)

type Wrapper struct {
	db *sql.DB
}

func Wrap(db *sql.DB) *Wrapper {
	return &Wrapper{db: db}
}

func (w *Wrapper) Ping(ctx context.Context) error {
	if w == nil || w.db == nil {
		return fmt.Errorf("nil db")
	}
	return w.db.PingContext(ctx)
}

func (w *Wrapper) Close() error {
	if w == nil || w.db == nil {
		return nil
	}
	return w.db.Close()
}

func (w *Wrapper) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	if w == nil || w.db == nil {
		return 0, fmt.Errorf("nil db")
	}
	res, err := w.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (w *Wrapper) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	if w == nil || w.db == nil {
		return nil, fmt.Errorf("nil db")
	}
	r, err := w.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return sqlRows{rows: r}, nil
}

func (w *Wrapper) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	if w == nil || w.db == nil {
		return errRow{}
	}
	return w.db.QueryRowContext(ctx, query, args...)
}

func (w *Wrapper) Begin(ctx context.Context) (database.Tx, error) {
	if w == nil || w.db == nil {
		return nil, fmt.Errorf("nil db")
	}
	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return sqlTx{tx: tx}, nil
}

type sqlTx struct {
	tx *sql.Tx
}

func (t sqlTx) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := t.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (t sqlTx) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	r, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return sqlRows{rows: r}, nil
}

func (t sqlTx) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	return t.tx.QueryRowContext(ctx, query, args...)
}

func (t sqlTx) Commit(_ context.Context) error {
	return t.tx.Commit()
}

func (t sqlTx) Rollback(_ context.Context) error {
	return t.tx.Rollback()
}

type sqlRows struct {
	rows *sql.Rows
}

func (r sqlRows) Close() {
	_ = r.rows.Close()
}

func (r sqlRows) Next() bool {
	return r.rows.Next()
}

func (r sqlRows) Scan(dest ...any) error {
	return r.rows.Scan(dest...)
}

func (r sqlRows) Err() error {
	return r.rows.Err()
}

type errRow struct{}

func (errRow) Scan(_ ...any) error {
	return fmt.Errorf("nil db")
}
