package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeste7/flw/pkg/domain/model"
	"github.com/aeste7/flw/pkg/domain/service"
	"github.com/aeste7/flw/pkg/infrastructure/inmemory"
)

func setupNotes(t *testing.T) service.NoteService {
	t.Helper()
	store := inmemory.NewStore()
	return service.NewNoteService(store.Notes())
}

func TestNoteCRUD(t *testing.T) {
	notes := setupNotes(t)
	ctx := context.Background()

	created, err := notes.CreateNote(ctx, "supplier call", "ask about friday delivery")
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	t.Run("get", func(t *testing.T) {
		got, err := notes.GetNote(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "supplier call", got.Title)
	})

	t.Run("update title only", func(t *testing.T) {
		title := "supplier meeting"
		updated, err := notes.UpdateNote(ctx, created.ID, model.NoteUpdate{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "supplier meeting", updated.Title)
		assert.Equal(t, "ask about friday delivery", updated.Content)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, notes.DeleteNote(ctx, created.ID))
		_, err := notes.GetNote(ctx, created.ID)
		assert.ErrorIs(t, err, model.ErrNoteNotFound)
	})

	t.Run("delete missing", func(t *testing.T) {
		assert.ErrorIs(t, notes.DeleteNote(ctx, created.ID), model.ErrNoteNotFound)
	})
}

func TestNoteValidation(t *testing.T) {
	notes := setupNotes(t)
	ctx := context.Background()

	_, err := notes.CreateNote(ctx, "", "content")
	assert.ErrorIs(t, err, service.ErrEmptyNote)

	_, err = notes.CreateNote(ctx, "title", "  ")
	assert.ErrorIs(t, err, service.ErrEmptyNote)

	created, err := notes.CreateNote(ctx, "title", "content")
	require.NoError(t, err)

	blank := " "
	_, err = notes.UpdateNote(ctx, created.ID, model.NoteUpdate{Title: &blank})
	assert.ErrorIs(t, err, service.ErrEmptyNote)
}

func TestListNotesNewestFirst(t *testing.T) {
	notes := setupNotes(t)
	ctx := context.Background()

	first, err := notes.CreateNote(ctx, "first", "a")
	require.NoError(t, err)
	second, err := notes.CreateNote(ctx, "second", "b")
	require.NoError(t, err)

	listed, err := notes.ListNotes(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, second.ID, listed[0].ID)
	assert.Equal(t, first.ID, listed[1].ID)
}
