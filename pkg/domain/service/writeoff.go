package service

import (
	"context"
	"strings"

	"github.com/aeste7/flw/pkg/domain/model"
)

// WriteoffService keeps the spoilage history. Recording a write-off debits the
// warehouse in the same transaction; clearing the history never touches it.
type WriteoffService interface {
	ListWriteoffs(ctx context.Context) ([]model.Writeoff, error)
	RecordWriteoff(ctx context.Context, flower string, amount int) (*model.Writeoff, error)
	ClearWriteoffs(ctx context.Context) error
}

func NewWriteoffService(writeoffs model.WriteoffRepository, warehouse WarehouseService, tx model.TxManager) WriteoffService {
	return &writeoffService{writeoffs: writeoffs, warehouse: warehouse, tx: tx}
}

type writeoffService struct {
	writeoffs model.WriteoffRepository
	warehouse WarehouseService
	tx        model.TxManager
}

func (s *writeoffService) ListWriteoffs(ctx context.Context) ([]model.Writeoff, error) {
	return s.writeoffs.FindAll(ctx)
}

func (s *writeoffService) RecordWriteoff(ctx context.Context, flower string, amount int) (*model.Writeoff, error) {
	flower = strings.TrimSpace(flower)
	if flower == "" {
		return nil, ErrEmptyFlower
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var writeoff *model.Writeoff
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		writeoff, err = s.writeoffs.Create(ctx, flower, amount)
		if err != nil {
			return err
		}
		return s.warehouse.Debit(ctx, flower, amount)
	})
	if err != nil {
		return nil, err
	}
	return writeoff, nil
}

func (s *writeoffService) ClearWriteoffs(ctx context.Context) error {
	return s.writeoffs.DeleteAll(ctx)
}
