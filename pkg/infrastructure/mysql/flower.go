package mysql

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/aeste7/flw/pkg/domain/model"
)

func NewFlowerRepository(db *sqlx.DB) model.FlowerRepository {
	return &flowerRepository{db: db}
}

type flowerRepository struct {
	db *sqlx.DB
}

func (r *flowerRepository) FindAll(ctx context.Context) ([]model.Flower, error) {
	flowers := make([]model.Flower, 0)
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &flowers,
		`SELECT id, flower, amount, date_time FROM warehouse ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to select flowers")
	}
	return flowers, nil
}

func (r *flowerRepository) Find(ctx context.Context, id int64) (*model.Flower, error) {
	var flower model.Flower
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &flower,
		`SELECT id, flower, amount, date_time FROM warehouse WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrFlowerNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get flower %d", id)
	}
	return &flower, nil
}

func (r *flowerRepository) FindByName(ctx context.Context, name string) (*model.Flower, error) {
	var flower model.Flower
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &flower,
		`SELECT id, flower, amount, date_time FROM warehouse WHERE flower = ?`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get flower %q", name)
	}
	return &flower, nil
}

func (r *flowerRepository) Create(ctx context.Context, name string, amount int) (*model.Flower, error) {
	res, err := ext(ctx, r.db).ExecContext(ctx,
		`INSERT INTO warehouse (flower, amount, date_time) VALUES (?, ?, ?)`,
		name, amount, time.Now().UTC())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to insert flower %q", name)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read inserted flower id")
	}
	return r.Find(ctx, id)
}

func (r *flowerRepository) Update(ctx context.Context, id int64, upd model.FlowerUpdate) (*model.Flower, error) {
	current, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	name, amount := current.Name, current.Amount
	if upd.Name != nil {
		name = *upd.Name
	}
	if upd.Amount != nil {
		amount = *upd.Amount
	}

	_, err = ext(ctx, r.db).ExecContext(ctx,
		`UPDATE warehouse SET flower = ?, amount = ?, date_time = ? WHERE id = ?`,
		name, amount, time.Now().UTC(), id)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update flower %d", id)
	}
	return r.Find(ctx, id)
}

func (r *flowerRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := ext(ctx, r.db).ExecContext(ctx, `DELETE FROM warehouse WHERE id = ?`, id)
	if err != nil {
		return false, errors.Wrapf(err, "failed to delete flower %d", id)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "failed to read affected rows")
	}
	return affected > 0, nil
}
