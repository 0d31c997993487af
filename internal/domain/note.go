package domain

import (
	"context"
	"time"
)

// EventNote is a threaded note on an event. Notes are append-only: there is no
// update or delete operation.
type EventNote struct {
	ID         string    `json:"id"`
	EventID    string    `json:"event_id"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// EventNoteRepository defines the interface for note storage.
type EventNoteRepository interface {
	Create(ctx context.Context, note *EventNote) error
	ListByEventID(ctx context.Context, eventID string) ([]*EventNote, error)
}

// NoteService defines the application operations on event notes.
type NoteService interface {
	AddNote(ctx context.Context, note *EventNote) error
	ListNotes(ctx context.Context, eventID string) ([]*EventNote, error)
}
