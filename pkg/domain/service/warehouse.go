package service

import (
	"context"
	"errors"
	"strings"

	"github.com/aeste7/flw/pkg/domain/model"
)

var (
	ErrInvalidAmount = errors.New("amount must be a positive number")
	ErrEmptyFlower   = errors.New("flower name must not be empty")
)

// WarehouseService owns the cut-flower ledger. Debit and Credit carry the
// adjustment semantics shared by orders, bouquets and write-offs: a debit
// clamps the amount at zero and silently ignores unknown flower names, a
// credit creates the stock row when the name is unknown. The server never
// rejects a write for insufficient stock; callers pre-check on the client
// side if they care.
type WarehouseService interface {
	ListFlowers(ctx context.Context) ([]model.Flower, error)
	GetFlower(ctx context.Context, id int64) (*model.Flower, error)
	AddFlowers(ctx context.Context, name string, amount int) (*model.Flower, error)
	UpdateFlower(ctx context.Context, id int64, upd model.FlowerUpdate) (*model.Flower, error)
	RemoveFlower(ctx context.Context, id int64) error

	Debit(ctx context.Context, name string, amount int) error
	Credit(ctx context.Context, name string, amount int) error
}

func NewWarehouseService(flowers model.FlowerRepository) WarehouseService {
	return &warehouseService{flowers: flowers}
}

type warehouseService struct {
	flowers model.FlowerRepository
}

func (s *warehouseService) ListFlowers(ctx context.Context) ([]model.Flower, error) {
	return s.flowers.FindAll(ctx)
}

func (s *warehouseService) GetFlower(ctx context.Context, id int64) (*model.Flower, error) {
	return s.flowers.Find(ctx, id)
}

func (s *warehouseService) AddFlowers(ctx context.Context, name string, amount int) (*model.Flower, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyFlower
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	existing, err := s.flowers.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return s.flowers.Create(ctx, name, amount)
	}

	newAmount := existing.Amount + amount
	return s.flowers.Update(ctx, existing.ID, model.FlowerUpdate{Amount: &newAmount})
}

func (s *warehouseService) UpdateFlower(ctx context.Context, id int64, upd model.FlowerUpdate) (*model.Flower, error) {
	if upd.Amount != nil && *upd.Amount < 0 {
		return nil, ErrInvalidAmount
	}
	if upd.Name != nil {
		trimmed := strings.TrimSpace(*upd.Name)
		if trimmed == "" {
			return nil, ErrEmptyFlower
		}
		// Names are ledger keys; store them the way AddFlowers does.
		upd.Name = &trimmed
	}
	return s.flowers.Update(ctx, id, upd)
}

func (s *warehouseService) RemoveFlower(ctx context.Context, id int64) error {
	deleted, err := s.flowers.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return model.ErrFlowerNotFound
	}
	return nil
}

func (s *warehouseService) Debit(ctx context.Context, name string, amount int) error {
	if amount <= 0 {
		return nil
	}
	flower, err := s.flowers.FindByName(ctx, name)
	if err != nil {
		return err
	}
	if flower == nil {
		// Unknown name: nothing to take, nothing to fabricate.
		return nil
	}

	newAmount := flower.Amount - amount
	if newAmount < 0 {
		newAmount = 0
	}
	_, err = s.flowers.Update(ctx, flower.ID, model.FlowerUpdate{Amount: &newAmount})
	return err
}

func (s *warehouseService) Credit(ctx context.Context, name string, amount int) error {
	if amount <= 0 {
		return nil
	}
	flower, err := s.flowers.FindByName(ctx, name)
	if err != nil {
		return err
	}
	if flower == nil {
		_, err = s.flowers.Create(ctx, name, amount)
		return err
	}

	newAmount := flower.Amount + amount
	_, err = s.flowers.Update(ctx, flower.ID, model.FlowerUpdate{Amount: &newAmount})
	return err
}
