package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
)

// RunInTx executes fn inside a single database transaction. The whole
// transaction is retried on serialization failures and deadlocks (SQLSTATE
// 40001/40P01), so callers can treat concurrent read-modify-write cycles
// (the site counter in particular) as conflict-free. fn may run more than
// once and must not carry side effects outside the transaction.
func RunInTx(ctx context.Context, fn func(ctx context.Context, tx bun.Tx) error) error {
	db := GetInstance()
	if db == nil {
		return fmt.Errorf("database instance not initialized")
	}

	return WithRetry(ctx, func() error {
		return db.RunInTx(ctx, &sql.TxOptions{}, fn)
	})
}

// RunInTxWithResult executes a function within a transaction and returns a result
func RunInTxWithResult[T any](ctx context.Context, fn func(ctx context.Context, tx bun.Tx) (T, error)) (T, error) {
	var result T

	err := RunInTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		var err error
		result, err = fn(ctx, tx)
		return err
	})

	return result, err
}
