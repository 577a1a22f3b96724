package mysql

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/aeste7/flw/pkg/domain/model"
)

func NewBouquetRepository(db *sqlx.DB) model.BouquetRepository {
	return &bouquetRepository{db: db}
}

type bouquetRepository struct {
	db *sqlx.DB
}

func (r *bouquetRepository) FindAll(ctx context.Context) ([]model.Bouquet, error) {
	bouquets := make([]model.Bouquet, 0)
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &bouquets,
		`SELECT id, description, photo, date_time FROM bouquets ORDER BY date_time DESC, id DESC`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to select bouquets")
	}
	return bouquets, nil
}

func (r *bouquetRepository) Find(ctx context.Context, id int64) (*model.Bouquet, error) {
	var bouquet model.Bouquet
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &bouquet,
		`SELECT id, description, photo, date_time FROM bouquets WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrBouquetNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get bouquet %d", id)
	}
	return &bouquet, nil
}

func (r *bouquetRepository) Create(ctx context.Context, bouquet *model.Bouquet) (*model.Bouquet, error) {
	res, err := ext(ctx, r.db).ExecContext(ctx,
		`INSERT INTO bouquets (description, photo, date_time) VALUES (?, ?, ?)`,
		bouquet.Description, bouquet.Photo, bouquet.CreatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to insert bouquet")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read inserted bouquet id")
	}
	return r.Find(ctx, id)
}

func (r *bouquetRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := ext(ctx, r.db).ExecContext(ctx, `DELETE FROM bouquets WHERE id = ?`, id)
	if err != nil {
		return false, errors.Wrapf(err, "failed to delete bouquet %d", id)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "failed to read affected rows")
	}
	return affected > 0, nil
}

func (r *bouquetRepository) FindItems(ctx context.Context, bouquetID int64) ([]model.BouquetItem, error) {
	items := make([]model.BouquetItem, 0)
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &items,
		`SELECT id, bouquet_id, flower, amount FROM bouquet_items WHERE bouquet_id = ? ORDER BY id`, bouquetID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to select items of bouquet %d", bouquetID)
	}
	return items, nil
}

func (r *bouquetRepository) CreateItem(ctx context.Context, bouquetID int64, item model.LineItem) (*model.BouquetItem, error) {
	res, err := ext(ctx, r.db).ExecContext(ctx,
		`INSERT INTO bouquet_items (bouquet_id, flower, amount) VALUES (?, ?, ?)`,
		bouquetID, item.Flower, item.Amount)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to insert item into bouquet %d", bouquetID)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read inserted bouquet item id")
	}
	return &model.BouquetItem{ID: id, BouquetID: bouquetID, Flower: item.Flower, Amount: item.Amount}, nil
}

func (r *bouquetRepository) DeleteItems(ctx context.Context, bouquetID int64) error {
	_, err := ext(ctx, r.db).ExecContext(ctx, `DELETE FROM bouquet_items WHERE bouquet_id = ?`, bouquetID)
	return errors.Wrapf(err, "failed to delete items of bouquet %d", bouquetID)
}
