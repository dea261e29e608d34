package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type contextKey int

const (
	transactionKey contextKey = iota
)

type Tx struct {
	tx *gorm.DB
}

func newTransaction(db *gorm.DB) (*Tx, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &Tx{tx: tx}, nil
}

func newTransactionContext(ctx context.Context, db *gorm.DB) (context.Context, error) {
	tx, err := newTransaction(db)
	if err != nil {
		return ctx, err
	}
	return context.WithValue(ctx, transactionKey, tx), nil
}

// Commit commits the transaction found in the context, if any, and returns a
// context without it. A context without a transaction is a no-op.
func Commit(ctx context.Context) (context.Context, error) {
	tx, ok := ctx.Value(transactionKey).(*Tx)
	if !ok {
		return ctx, nil
	}
	newCtx := context.WithValue(ctx, transactionKey, nil)
	return newCtx, tx.Commit()
}

func Rollback(ctx context.Context) (context.Context, error) {
	tx, ok := ctx.Value(transactionKey).(*Tx)
	if !ok {
		return ctx, nil
	}
	newCtx := context.WithValue(ctx, transactionKey, nil)
	return newCtx, tx.Rollback()
}

func (t *Tx) Commit() error {
	if t.tx == nil {
		return errors.New("transaction already finished")
	}
	err := t.tx.Commit().Error
	t.tx = nil
	return err
}

func (t *Tx) Rollback() error {
	if t.tx == nil {
		return errors.New("transaction already finished")
	}
	err := t.tx.Rollback().Error
	t.tx = nil
	return err
}

// getDB returns the transaction bound to the context when one exists,
// otherwise the store's own handle.
func getDB(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(transactionKey).(*Tx); ok && tx != nil && tx.tx != nil {
		return tx.tx
	}
	return db
}
