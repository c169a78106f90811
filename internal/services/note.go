package services

import (
	"context"
	"fmt"
	"time"

	"github.com/calnote/apiserver/types"
)

// NoteRepository defines persistence operations for notes. Mutations take
// the owner id so the ownership filter lives in the same statement as the
// change itself.
type NoteRepository interface {
	Create(ctx context.Context, note types.Note) (types.Note, error)
	ListByOwner(ctx context.Context, ownerID int) ([]types.Note, error)
	UpdateContent(ctx context.Context, ownerID, noteID int, content string) error
	Delete(ctx context.Context, ownerID, noteID int) error
}

// ContentSanitizer strips unsafe markup from note content before it is
// persisted.
type ContentSanitizer interface {
	Sanitize(raw string) string
}

// NoteService encapsulates note use-cases for an already-authenticated
// owner. The owner id always comes from a verified token, never from the
// request payload.
type NoteService struct {
	repo      NoteRepository
	sanitizer ContentSanitizer
}

func NewNoteService(repo NoteRepository, sanitizer ContentSanitizer) *NoteService {
	return &NoteService{
		repo:      repo,
		sanitizer: sanitizer,
	}
}

// Create persists a new note for the owner on the given calendar day.
// Multiple notes on the same day are allowed; the client picks which one
// to update on subsequent saves.
func (s *NoteService) Create(ctx context.Context, ownerID int, date, content string) (types.Note, error) {
	parsed, err := time.Parse(types.DateLayout, date)
	if err != nil {
		return types.Note{}, ErrValidation
	}

	note, err := s.repo.Create(ctx, types.Note{
		OwnerID: ownerID,
		Date:    parsed.Format(types.DateLayout),
		Content: s.sanitizer.Sanitize(content),
	})
	if err != nil {
		return types.Note{}, fmt.Errorf("create note: %w", err)
	}
	return note, nil
}

// List returns every note owned by ownerID, in storage order.
func (s *NoteService) List(ctx context.Context, ownerID int) ([]types.Note, error) {
	notes, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// UpdateContent overwrites the content of a note the owner holds. A note
// that does not exist and a note held by someone else both surface as
// store.ErrNotFound.
func (s *NoteService) UpdateContent(ctx context.Context, ownerID, noteID int, content string) error {
	return s.repo.UpdateContent(ctx, ownerID, noteID, s.sanitizer.Sanitize(content))
}

// Delete removes a note the owner holds, with the same not-found collapse
// as UpdateContent.
func (s *NoteService) Delete(ctx context.Context, ownerID, noteID int) error {
	return s.repo.Delete(ctx, ownerID, noteID)
}
