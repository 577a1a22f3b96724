package model

import (
	"context"
	"time"
)

// Writeoff is an append-only record of discarded stock. Recording one also
// debits the warehouse ledger; clearing the history does not touch it.
type Writeoff struct {
	ID        int64     `db:"id" json:"id"`
	Flower    string    `db:"flower" json:"flower"`
	Amount    int       `db:"amount" json:"amount"`
	CreatedAt time.Time `db:"date_time" json:"dateTime"`
}

type WriteoffRepository interface {
	FindAll(ctx context.Context) ([]Writeoff, error)
	Create(ctx context.Context, flower string, amount int) (*Writeoff, error)
	DeleteAll(ctx context.Context) error
}
