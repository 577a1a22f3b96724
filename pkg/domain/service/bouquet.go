package service

import (
	"context"
	"time"

	"github.com/aeste7/flw/pkg/domain/model"
)

// BouquetService manages showcase bouquets. Assembly debits the warehouse,
// selling consumes the flowers permanently, disassembly returns them.
type BouquetService interface {
	ListBouquets(ctx context.Context) ([]model.Bouquet, error)
	GetBouquet(ctx context.Context, id int64) (*model.Bouquet, error)
	GetBouquetItems(ctx context.Context, id int64) ([]model.BouquetItem, error)
	CreateBouquet(ctx context.Context, description string, photo *string, items []model.LineItem) (*model.Bouquet, error)
	SellBouquet(ctx context.Context, id int64) error
	DisassembleBouquet(ctx context.Context, id int64) error
}

func NewBouquetService(bouquets model.BouquetRepository, warehouse WarehouseService, tx model.TxManager) BouquetService {
	return &bouquetService{bouquets: bouquets, warehouse: warehouse, tx: tx}
}

type bouquetService struct {
	bouquets  model.BouquetRepository
	warehouse WarehouseService
	tx        model.TxManager
}

func (s *bouquetService) ListBouquets(ctx context.Context) ([]model.Bouquet, error) {
	return s.bouquets.FindAll(ctx)
}

func (s *bouquetService) GetBouquet(ctx context.Context, id int64) (*model.Bouquet, error) {
	return s.bouquets.Find(ctx, id)
}

func (s *bouquetService) GetBouquetItems(ctx context.Context, id int64) ([]model.BouquetItem, error) {
	if _, err := s.bouquets.Find(ctx, id); err != nil {
		return nil, err
	}
	return s.bouquets.FindItems(ctx, id)
}

func (s *bouquetService) CreateBouquet(ctx context.Context, description string, photo *string, items []model.LineItem) (*model.Bouquet, error) {
	wanted := mergeItems(items)
	if len(wanted) == 0 {
		return nil, ErrEmptyItems
	}

	var created *model.Bouquet
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.bouquets.Create(ctx, &model.Bouquet{
			Description: description,
			Photo:       photo,
			CreatedAt:   time.Now().UTC(),
		})
		if err != nil {
			return err
		}
		for _, item := range sortedItems(wanted) {
			if _, err := s.bouquets.CreateItem(ctx, created.ID, item); err != nil {
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

// SellBouquet removes the bouquet without crediting the warehouse: the
// flowers left the shop with the customer.
func (s *bouquetService) SellBouquet(ctx context.Context, id int64) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.bouquets.Find(ctx, id); err != nil {
			return err
		}
		if err := s.bouquets.DeleteItems(ctx, id); err != nil {
			return err
		}
		_, err := s.bouquets.Delete(ctx, id)
		return err
	})
}

func (s *bouquetService) DisassembleBouquet(ctx context.Context, id int64) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.bouquets.Find(ctx, id); err != nil {
			return err
		}
		items, err := s.bouquets.FindItems(ctx, id)
		if err != nil {
			return err
		}
		for _, item := range items {
			if err := s.warehouse.Credit(ctx, item.Flower, item.Amount); err != nil {
				return err
			}
		}
		if err := s.bouquets.DeleteItems(ctx, id); err != nil {
			return err
		}
		_, err = s.bouquets.Delete(ctx, id)
		return err
	})
}
