package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX là phần chung của *pgxpool.Pool và pgx.Tx.
// Repository nhận DBTX để cùng một query chạy được trong hoặc ngoài transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TxBeginner được implement bởi *pgxpool.Pool
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TxFunc là function type được execute trong transaction
type TxFunc func(pgx.Tx) error

// WithTransaction wraps một function trong transaction
// Auto rollback nếu có error hoặc panic, auto commit nếu success
func WithTransaction(ctx context.Context, db TxBeginner, fn TxFunc) (err error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p) // Re-throw panic
		} else if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if err = fn(tx); err != nil {
		return err // Defer sẽ rollback
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Transactor chạy fn trong một transaction.
// Services giữ Transactor thay vì *pgxpool.Pool để test có thể chạy fn trực tiếp.
type Transactor interface {
	WithinTx(ctx context.Context, fn TxFunc) error
}

type poolTransactor struct {
	db TxBeginner
}

func NewTransactor(db TxBeginner) Transactor {
	return &poolTransactor{db: db}
}

func (t *poolTransactor) WithinTx(ctx context.Context, fn TxFunc) error {
	return WithTransaction(ctx, t.db, fn)
}
