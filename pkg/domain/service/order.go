package service

import (
	"context"
	"errors"
	"sort"

	"github.com/aeste7/flw/pkg/domain/model"
)

var ErrEmptyItems = errors.New("at least one line item is required")

// OrderService keeps an order's line items and the warehouse ledger in a
// consistent joint state. Creating an order debits every item, soft-deleting
// credits everything back exactly once, and editing reconciles per flower
// name as a net delta.
type OrderService interface {
	ListOrders(ctx context.Context) ([]model.Order, error)
	GetOrder(ctx context.Context, id int64) (*model.Order, error)
	GetOrderItems(ctx context.Context, id int64) ([]model.OrderItem, error)
	CreateOrder(ctx context.Context, order *model.Order, items []model.LineItem) (*model.Order, error)
	UpdateOrder(ctx context.Context, id int64, upd model.OrderUpdate, items []model.LineItem) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error)
	DeleteOrder(ctx context.Context, id int64) (*model.Order, error)
}

func NewOrderService(orders model.OrderRepository, warehouse WarehouseService, tx model.TxManager) OrderService {
	return &orderService{orders: orders, warehouse: warehouse, tx: tx}
}

type orderService struct {
	orders    model.OrderRepository
	warehouse WarehouseService
	tx        model.TxManager
}

func (s *orderService) ListOrders(ctx context.Context) ([]model.Order, error) {
	return s.orders.FindAll(ctx)
}

func (s *orderService) GetOrder(ctx context.Context, id int64) (*model.Order, error) {
	return s.orders.Find(ctx, id)
}

func (s *orderService) GetOrderItems(ctx context.Context, id int64) ([]model.OrderItem, error) {
	if _, err := s.orders.Find(ctx, id); err != nil {
		return nil, err
	}
	return s.orders.FindItems(ctx, id)
}

func (s *orderService) CreateOrder(ctx context.Context, order *model.Order, items []model.LineItem) (*model.Order, error) {
	wanted := mergeItems(items)
	if len(wanted) == 0 {
		return nil, ErrEmptyItems
	}

	if order.Status == "" {
		order.Status = model.OrderStatusNew
	}
	if order.Pickup {
		order.To = model.PickupRecipient
		order.Address = model.PickupAddress
	}

	var created *model.Order
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.orders.Create(ctx, order)
		if err != nil {
			return err
		}
		for _, item := range sortedItems(wanted) {
			if _, err := s.orders.CreateItem(ctx, created.ID, item); err != nil {
				return err
			}
			if err := s.warehouse.Debit(ctx, item.Flower, item.Amount); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateOrder replaces the order's line items wholesale and applies the
// partial header update. The ledger is reconciled per flower name as a net
// delta against the items currently attached, never as a blanket
// credit-everything-then-debit pass.
func (s *orderService) UpdateOrder(ctx context.Context, id int64, upd model.OrderUpdate, items []model.LineItem) (*model.Order, error) {
	after := mergeItems(items)
	if len(after) == 0 {
		return nil, ErrEmptyItems
	}

	var updated *model.Order
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.orders.Find(ctx, id)
		if err != nil {
			return err
		}

		currentItems, err := s.orders.FindItems(ctx, id)
		if err != nil {
			return err
		}
		before := make(map[string]int, len(currentItems))
		for _, item := range currentItems {
			before[item.Flower] += item.Amount
		}

		if err := s.reconcile(ctx, before, after); err != nil {
			return err
		}

		if err := s.orders.DeleteItems(ctx, id); err != nil {
			return err
		}
		for _, item := range sortedItems(after) {
			if _, err := s.orders.CreateItem(ctx, id, item); err != nil {
				return err
			}
		}

		pickup := current.Pickup
		if upd.Pickup != nil {
			pickup = *upd.Pickup
		}
		if pickup {
			to, address := model.PickupRecipient, model.PickupAddress
			upd.To, upd.Address = &to, &address
		}

		updated, err = s.orders.Update(ctx, id, upd)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	if status == model.OrderStatusDeleted {
		return s.DeleteOrder(ctx, id)
	}
	return s.orders.UpdateStatus(ctx, id, status)
}

// DeleteOrder is a soft delete: line items are credited back to the warehouse
// and removed, then the order is marked deleted. A repeated delete is a no-op;
// the items were already returned once.
func (s *orderService) DeleteOrder(ctx context.Context, id int64) (*model.Order, error) {
	var deleted *model.Order
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.orders.Find(ctx, id)
		if err != nil {
			return err
		}
		if current.Status == model.OrderStatusDeleted {
			deleted = current
			return nil
		}

		items, err := s.orders.FindItems(ctx, id)
		if err != nil {
			return err
		}
		for _, item := range items {
			if err := s.warehouse.Credit(ctx, item.Flower, item.Amount); err != nil {
				return err
			}
		}
		if err := s.orders.DeleteItems(ctx, id); err != nil {
			return err
		}

		deleted, err = s.orders.UpdateStatus(ctx, id, model.OrderStatusDeleted)
		return err
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func (s *orderService) reconcile(ctx context.Context, before, after map[string]int) error {
	names := make(map[string]struct{}, len(before)+len(after))
	for name := range before {
		names[name] = struct{}{}
	}
	for name := range after {
		names[name] = struct{}{}
	}

	ordered := make([]string, 0, len(names))
	for name := range names {
		ordered = append(ordered, name)
	}
	sort.Strings(ordered)

	for _, name := range ordered {
		delta := after[name] - before[name]
		switch {
		case delta > 0:
			if err := s.warehouse.Debit(ctx, name, delta); err != nil {
				return err
			}
		case delta < 0:
			if err := s.warehouse.Credit(ctx, name, -delta); err != nil {
				return err
			}
		}
	}
	return nil
}

// mergeItems sums duplicate flower names and drops non-positive amounts.
func mergeItems(items []model.LineItem) map[string]int {
	merged := make(map[string]int, len(items))
	for _, item := range items {
		if item.Flower == "" || item.Amount <= 0 {
			continue
		}
		merged[item.Flower] += item.Amount
	}
	return merged
}

func sortedItems(merged map[string]int) []model.LineItem {
	items := make([]model.LineItem, 0, len(merged))
	for flower, amount := range merged {
		items = append(items, model.LineItem{Flower: flower, Amount: amount})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Flower < items[j].Flower })
	return items
}
