package mysql

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/aeste7/flw/pkg/domain/model"
)

func NewNoteRepository(db *sqlx.DB) model.NoteRepository {
	return &noteRepository{db: db}
}

type noteRepository struct {
	db *sqlx.DB
}

func (r *noteRepository) FindAll(ctx context.Context) ([]model.Note, error) {
	notes := make([]model.Note, 0)
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &notes,
		`SELECT id, title, content, date_time FROM notes ORDER BY date_time DESC, id DESC`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to select notes")
	}
	return notes, nil
}

func (r *noteRepository) Find(ctx context.Context, id int64) (*model.Note, error) {
	var note model.Note
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &note,
		`SELECT id, title, content, date_time FROM notes WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNoteNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get note %d", id)
	}
	return &note, nil
}

func (r *noteRepository) Create(ctx context.Context, title, content string) (*model.Note, error) {
	res, err := ext(ctx, r.db).ExecContext(ctx,
		`INSERT INTO notes (title, content, date_time) VALUES (?, ?, ?)`,
		title, content, time.Now().UTC())
	if err != nil {
		return nil, errors.Wrap(err, "failed to insert note")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read inserted note id")
	}
	return r.Find(ctx, id)
}

func (r *noteRepository) Update(ctx context.Context, id int64, upd model.NoteUpdate) (*model.Note, error) {
	current, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	title, content := current.Title, current.Content
	if upd.Title != nil {
		title = *upd.Title
	}
	if upd.Content != nil {
		content = *upd.Content
	}

	_, err = ext(ctx, r.db).ExecContext(ctx,
		`UPDATE notes SET title = ?, content = ?, date_time = ? WHERE id = ?`,
		title, content, time.Now().UTC(), id)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update note %d", id)
	}
	return r.Find(ctx, id)
}

func (r *noteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := ext(ctx, r.db).ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return false, errors.Wrapf(err, "failed to delete note %d", id)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "failed to read affected rows")
	}
	return affected > 0, nil
}
