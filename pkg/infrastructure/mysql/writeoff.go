package mysql

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/aeste7/flw/pkg/domain/model"
)

func NewWriteoffRepository(db *sqlx.DB) model.WriteoffRepository {
	return &writeoffRepository{db: db}
}

type writeoffRepository struct {
	db *sqlx.DB
}

func (r *writeoffRepository) FindAll(ctx context.Context) ([]model.Writeoff, error) {
	writeoffs := make([]model.Writeoff, 0)
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &writeoffs,
		`SELECT id, flower, amount, date_time FROM writeoffs ORDER BY date_time DESC, id DESC`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to select writeoffs")
	}
	return writeoffs, nil
}

func (r *writeoffRepository) Create(ctx context.Context, flower string, amount int) (*model.Writeoff, error) {
	now := time.Now().UTC()
	res, err := ext(ctx, r.db).ExecContext(ctx,
		`INSERT INTO writeoffs (flower, amount, date_time) VALUES (?, ?, ?)`,
		flower, amount, now)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to insert writeoff for %q", flower)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read inserted writeoff id")
	}

	var writeoff model.Writeoff
	err = sqlx.GetContext(ctx, ext(ctx, r.db), &writeoff,
		`SELECT id, flower, amount, date_time FROM writeoffs WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.Errorf("inserted writeoff %d disappeared", id)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get writeoff %d", id)
	}
	return &writeoff, nil
}

func (r *writeoffRepository) DeleteAll(ctx context.Context) error {
	_, err := ext(ctx, r.db).ExecContext(ctx, `DELETE FROM writeoffs`)
	return errors.Wrap(err, "failed to clear writeoffs")
}
