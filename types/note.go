package types

import "time"

// DateLayout is the wire and storage format for note dates.
// Notes are day-granular; time-of-day carries no meaning.
const DateLayout = "2006-01-02"

// Note is a piece of markdown text attached to one calendar date
// and owned by exactly one user.
type Note struct {
	// ID is the unique identifier of the note.
	ID int `json:"id" db:"id"`

	// OwnerID references the user that created the note.
	// It is fixed at creation; ownership is the sole authorization rule.
	OwnerID int `json:"ownerId" db:"owner_id"`

	// Date is the calendar day the note belongs to, in DateLayout form.
	Date string `json:"date" db:"date"`

	// Content is the markdown body of the note.
	Content string `json:"content" db:"content"`

	// CreatedAt is the timestamp when the note was created.
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// UpdatedAt is the timestamp of the most recent content change.
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
