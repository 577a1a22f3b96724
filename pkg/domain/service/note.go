package service

import (
	"context"
	"errors"
	"strings"

	"github.com/aeste7/flw/pkg/domain/model"
)

var ErrEmptyNote = errors.New("note title and content must not be empty")

type NoteService interface {
	ListNotes(ctx context.Context) ([]model.Note, error)
	GetNote(ctx context.Context, id int64) (*model.Note, error)
	CreateNote(ctx context.Context, title, content string) (*model.Note, error)
	UpdateNote(ctx context.Context, id int64, upd model.NoteUpdate) (*model.Note, error)
	DeleteNote(ctx context.Context, id int64) error
}

func NewNoteService(notes model.NoteRepository) NoteService {
	return &noteService{notes: notes}
}

type noteService struct {
	notes model.NoteRepository
}

func (s *noteService) ListNotes(ctx context.Context) ([]model.Note, error) {
	return s.notes.FindAll(ctx)
}

func (s *noteService) GetNote(ctx context.Context, id int64) (*model.Note, error) {
	return s.notes.Find(ctx, id)
}

func (s *noteService) CreateNote(ctx context.Context, title, content string) (*model.Note, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return nil, ErrEmptyNote
	}
	return s.notes.Create(ctx, title, content)
}

func (s *noteService) UpdateNote(ctx context.Context, id int64, upd model.NoteUpdate) (*model.Note, error) {
	if upd.Title != nil && strings.TrimSpace(*upd.Title) == "" {
		return nil, ErrEmptyNote
	}
	if upd.Content != nil && strings.TrimSpace(*upd.Content) == "" {
		return nil, ErrEmptyNote
	}
	return s.notes.Update(ctx, id, upd)
}

func (s *noteService) DeleteNote(ctx context.Context, id int64) error {
	deleted, err := s.notes.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return model.ErrNoteNotFound
	}
	return nil
}
