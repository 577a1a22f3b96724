package model

import (
	"context"
	"errors"
	"time"
)

var ErrNoteNotFound = errors.New("note not found")

type Note struct {
	ID        int64     `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Content   string    `db:"content" json:"content"`
	UpdatedAt time.Time `db:"date_time" json:"dateTime"`
}

// NoteUpdate is a partial update: nil fields are left untouched.
type NoteUpdate struct {
	Title   *string
	Content *string
}

type NoteRepository interface {
	FindAll(ctx context.Context) ([]Note, error)
	Find(ctx context.Context, id int64) (*Note, error)
	Create(ctx context.Context, title, content string) (*Note, error)
	Update(ctx context.Context, id int64, upd NoteUpdate) (*Note, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
