package model

import (
	"context"
	"errors"
	"time"
)

var ErrBouquetNotFound = errors.New("bouquet not found")

// Bouquet is a pre-assembled showcase item. Its flowers are taken from the
// warehouse on assembly; selling consumes them, disassembling returns them.
type Bouquet struct {
	ID          int64     `db:"id" json:"id"`
	Description string    `db:"description" json:"description"`
	Photo       *string   `db:"photo" json:"photo"`
	CreatedAt   time.Time `db:"date_time" json:"dateTime"`
}

type BouquetItem struct {
	ID        int64  `db:"id" json:"id"`
	BouquetID int64  `db:"bouquet_id" json:"bouquetId"`
	Flower    string `db:"flower" json:"flower"`
	Amount    int    `db:"amount" json:"amount"`
}

type BouquetRepository interface {
	FindAll(ctx context.Context) ([]Bouquet, error)
	Find(ctx context.Context, id int64) (*Bouquet, error)
	Create(ctx context.Context, bouquet *Bouquet) (*Bouquet, error)
	Delete(ctx context.Context, id int64) (bool, error)

	FindItems(ctx context.Context, bouquetID int64) ([]BouquetItem, error)
	CreateItem(ctx context.Context, bouquetID int64, item LineItem) (*BouquetItem, error)
	DeleteItems(ctx context.Context, bouquetID int64) error
}
