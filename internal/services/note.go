package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"studycalendar/internal/domain"
)

type noteService struct {
	noteRepo       domain.EventNoteRepository
	contextTimeout time.Duration
}

func NewNoteService(noteRepo domain.EventNoteRepository, timeout time.Duration) domain.NoteService {
	return &noteService{
		noteRepo:       noteRepo,
		contextTimeout: timeout,
	}
}

// AddNote persists a new note. The event id is not checked against the events
// table here; the event_notes foreign key constraint enforces integrity.
func (s *noteService) AddNote(ctx context.Context, note *domain.EventNote) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if strings.TrimSpace(note.AuthorName) == "" {
		return fmt.Errorf("%w: author_name is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(note.Content) == "" {
		return fmt.Errorf("%w: content is required", domain.ErrInvalidInput)
	}

	note.ID = uuid.NewString()
	now := time.Now().UTC()
	note.CreatedAt = now
	note.UpdatedAt = now

	return s.noteRepo.Create(ctx, note)
}

func (s *noteService) ListNotes(ctx context.Context, eventID string) ([]*domain.EventNote, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	notes, err := s.noteRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	if notes == nil {
		notes = []*domain.EventNote{}
	}
	return notes, nil
}
