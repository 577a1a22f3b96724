package model

import (
	"context"
	"errors"
	"time"
)

var ErrFlowerNotFound = errors.New("flower not found")

// Flower is a single warehouse ledger row. Amount never goes below zero:
// subtraction clamps instead of failing.
type Flower struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"flower" json:"flower"`
	Amount    int       `db:"amount" json:"amount"`
	UpdatedAt time.Time `db:"date_time" json:"dateTime"`
}

// FlowerUpdate is a partial update: nil fields are left untouched.
type FlowerUpdate struct {
	Name   *string
	Amount *int
}

type FlowerRepository interface {
	FindAll(ctx context.Context) ([]Flower, error)
	Find(ctx context.Context, id int64) (*Flower, error)
	FindByName(ctx context.Context, name string) (*Flower, error)
	Create(ctx context.Context, name string, amount int) (*Flower, error)
	Update(ctx context.Context, id int64, upd FlowerUpdate) (*Flower, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
