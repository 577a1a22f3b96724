package mysql

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/aeste7/flw/pkg/domain/model"
)

type txKey struct{}

// NewTxManager returns a model.TxManager that opens a single *sqlx.Tx per
// WithinTx call and carries it through the context. Repositories built on the
// same *sqlx.DB pick the transaction up via ext(), so every repository call
// inside fn joins it.
func NewTxManager(db *sqlx.DB) model.TxManager {
	return &txManager{db: db}
}

type txManager struct {
	db *sqlx.DB
}

func (m *txManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if txFrom(ctx) != nil {
		// Already inside a transaction, join it.
		return fn(ctx)
	}

	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Wrapf(err, "rollback failed: %v", rbErr)
		}
		return err
	}

	return errors.Wrap(tx.Commit(), "failed to commit transaction")
}

func txFrom(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey{}).(*sqlx.Tx)
	return tx
}

// ext returns the active transaction when there is one, the bare connection
// otherwise.
func ext(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := txFrom(ctx); tx != nil {
		return tx
	}
	return db
}
