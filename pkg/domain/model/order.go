package model

import (
	"context"
	"errors"
	"time"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidStatus = errors.New("invalid order status")
)

type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "new"
	OrderStatusAssembled OrderStatus = "assembled"
	OrderStatusSent      OrderStatus = "sent"
	OrderStatusFinished  OrderStatus = "finished"
	OrderStatusDeleted   OrderStatus = "deleted"
)

// ParseOrderStatus maps a wire value onto a known status.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderStatusNew, OrderStatusAssembled, OrderStatusSent, OrderStatusFinished, OrderStatusDeleted:
		return OrderStatus(s), nil
	}
	return "", ErrInvalidStatus
}

// Fixed recipient/address used for pickup orders instead of user input.
const (
	PickupRecipient = "pickup location"
	PickupAddress   = "store"
)

type Order struct {
	ID          int64       `db:"id" json:"id"`
	From        string      `db:"sender" json:"from"`
	To          string      `db:"recipient" json:"to"`
	Address     string      `db:"address" json:"address"`
	ScheduledAt time.Time   `db:"date_time" json:"dateTime"`
	TimeFrom    *string     `db:"time_from" json:"timeFrom"`
	TimeTo      *string     `db:"time_to" json:"timeTo"`
	Notes       *string     `db:"notes" json:"notes"`
	Status      OrderStatus `db:"status" json:"status"`
	Pickup      bool        `db:"pickup" json:"pickup"`
	Showcase    bool        `db:"showcase" json:"showcase"`
}

// OrderItem references its flower by name, not by warehouse id, so the item
// survives deletion of the stock row.
type OrderItem struct {
	ID      int64  `db:"id" json:"id"`
	OrderID int64  `db:"order_id" json:"orderId"`
	Flower  string `db:"flower" json:"flower"`
	Amount  int    `db:"amount" json:"amount"`
}

// LineItem is the flower/amount pair submitted by clients when creating or
// replacing order and bouquet contents.
type LineItem struct {
	Flower string
	Amount int
}

// OrderUpdate is a partial header update: nil fields are left untouched.
type OrderUpdate struct {
	From        *string
	To          *string
	Address     *string
	ScheduledAt *time.Time
	TimeFrom    *string
	TimeTo      *string
	Notes       *string
	Status      *OrderStatus
	Pickup      *bool
	Showcase    *bool
}

type OrderRepository interface {
	FindAll(ctx context.Context) ([]Order, error)
	Find(ctx context.Context, id int64) (*Order, error)
	Create(ctx context.Context, order *Order) (*Order, error)
	Update(ctx context.Context, id int64, upd OrderUpdate) (*Order, error)
	UpdateStatus(ctx context.Context, id int64, status OrderStatus) (*Order, error)

	FindItems(ctx context.Context, orderID int64) ([]OrderItem, error)
	CreateItem(ctx context.Context, orderID int64, item LineItem) (*OrderItem, error)
	DeleteItems(ctx context.Context, orderID int64) error
}
