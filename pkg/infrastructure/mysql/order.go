package mysql

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/aeste7/flw/pkg/domain/model"
)

const orderColumns = `id, sender, recipient, address, date_time, time_from, time_to, notes, status, pickup, showcase`

func NewOrderRepository(db *sqlx.DB) model.OrderRepository {
	return &orderRepository{db: db}
}

type orderRepository struct {
	db *sqlx.DB
}

func (r *orderRepository) FindAll(ctx context.Context) ([]model.Order, error) {
	orders := make([]model.Order, 0)
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &orders,
		`SELECT `+orderColumns+` FROM orders ORDER BY date_time DESC, id DESC`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to select orders")
	}
	return orders, nil
}

func (r *orderRepository) Find(ctx context.Context, id int64) (*model.Order, error) {
	var order model.Order
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &order,
		`SELECT `+orderColumns+` FROM orders WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrOrderNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get order %d", id)
	}
	return &order, nil
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	res, err := ext(ctx, r.db).ExecContext(ctx,
		`INSERT INTO orders (sender, recipient, address, date_time, time_from, time_to, notes, status, pickup, showcase)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		order.From, order.To, order.Address, order.ScheduledAt,
		order.TimeFrom, order.TimeTo, order.Notes, order.Status, order.Pickup, order.Showcase)
	if err != nil {
		return nil, errors.Wrap(err, "failed to insert order")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read inserted order id")
	}
	return r.Find(ctx, id)
}

func (r *orderRepository) Update(ctx context.Context, id int64, upd model.OrderUpdate) (*model.Order, error) {
	current, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	next := *current
	if upd.From != nil {
		next.From = *upd.From
	}
	if upd.To != nil {
		next.To = *upd.To
	}
	if upd.Address != nil {
		next.Address = *upd.Address
	}
	if upd.ScheduledAt != nil {
		next.ScheduledAt = *upd.ScheduledAt
	}
	if upd.TimeFrom != nil {
		next.TimeFrom = upd.TimeFrom
	}
	if upd.TimeTo != nil {
		next.TimeTo = upd.TimeTo
	}
	if upd.Notes != nil {
		next.Notes = upd.Notes
	}
	if upd.Status != nil {
		next.Status = *upd.Status
	}
	if upd.Pickup != nil {
		next.Pickup = *upd.Pickup
	}
	if upd.Showcase != nil {
		next.Showcase = *upd.Showcase
	}

	_, err = ext(ctx, r.db).ExecContext(ctx,
		`UPDATE orders
		 SET sender = ?, recipient = ?, address = ?, date_time = ?, time_from = ?, time_to = ?,
		     notes = ?, status = ?, pickup = ?, showcase = ?
		 WHERE id = ?`,
		next.From, next.To, next.Address, next.ScheduledAt, next.TimeFrom, next.TimeTo,
		next.Notes, next.Status, next.Pickup, next.Showcase, id)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update order %d", id)
	}
	return r.Find(ctx, id)
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	_, err := ext(ctx, r.db).ExecContext(ctx,
		`UPDATE orders SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update status of order %d", id)
	}
	// RowsAffected is 0 both for a missing row and for an unchanged status,
	// so a lookup decides which it was.
	return r.Find(ctx, id)
}

func (r *orderRepository) FindItems(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	items := make([]model.OrderItem, 0)
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &items,
		`SELECT id, order_id, flower, amount FROM order_items WHERE order_id = ? ORDER BY id`, orderID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to select items of order %d", orderID)
	}
	return items, nil
}

func (r *orderRepository) CreateItem(ctx context.Context, orderID int64, item model.LineItem) (*model.OrderItem, error) {
	res, err := ext(ctx, r.db).ExecContext(ctx,
		`INSERT INTO order_items (order_id, flower, amount) VALUES (?, ?, ?)`,
		orderID, item.Flower, item.Amount)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to insert item into order %d", orderID)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read inserted order item id")
	}
	return &model.OrderItem{ID: id, OrderID: orderID, Flower: item.Flower, Amount: item.Amount}, nil
}

func (r *orderRepository) DeleteItems(ctx context.Context, orderID int64) error {
	_, err := ext(ctx, r.db).ExecContext(ctx, `DELETE FROM order_items WHERE order_id = ?`, orderID)
	return errors.Wrapf(err, "failed to delete items of order %d", orderID)
}
