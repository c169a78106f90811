package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/calnote/apiserver/types"
)

// NoteRepository handles persistence for notes. Every mutation is a single
// statement filtered by primary key plus owner id, so ownership is enforced
// by the same statement that performs the change.
type NoteRepository struct {
	db *sql.DB
}

func NewNoteRepository(db *sql.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) Create(ctx context.Context, note types.Note) (types.Note, error) {
	now := time.Now()
	note.CreatedAt = now
	note.UpdatedAt = now

	const query = `
		INSERT INTO notes (owner_id, date, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		note.OwnerID,
		note.Date,
		note.Content,
		note.CreatedAt,
		note.UpdatedAt,
	).Scan(&note.ID); err != nil {
		return types.Note{}, err
	}
	return note, nil
}

func (r *NoteRepository) ListByOwner(ctx context.Context, ownerID int) ([]types.Note, error) {
	const query = `
		SELECT id, owner_id, date, content, created_at, updated_at
		FROM notes
		WHERE owner_id = $1
		ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := make([]types.Note, 0)
	for rows.Next() {
		var note types.Note
		var date time.Time
		if err := rows.Scan(
			&note.ID,
			&note.OwnerID,
			&date,
			&note.Content,
			&note.CreatedAt,
			&note.UpdatedAt,
		); err != nil {
			return nil, err
		}
		note.Date = date.Format(types.DateLayout)
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notes, nil
}

func (r *NoteRepository) UpdateContent(ctx context.Context, ownerID, noteID int, content string) error {
	const query = `
		UPDATE notes
		SET content = $1,
			updated_at = $2
		WHERE id = $3 AND owner_id = $4`
	result, err := r.db.ExecContext(ctx, query, content, time.Now(), noteID, ownerID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *NoteRepository) Delete(ctx context.Context, ownerID, noteID int) error {
	const query = `DELETE FROM notes WHERE id = $1 AND owner_id = $2`
	result, err := r.db.ExecContext(ctx, query, noteID, ownerID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
