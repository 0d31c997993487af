package postgres

import (
	"context"
	"database/sql"

	"studycalendar/internal/domain"
)

type eventNoteRepository struct {
	DB *sql.DB
}

func NewEventNoteRepository(db *sql.DB) domain.EventNoteRepository {
	return &eventNoteRepository{
		DB: db,
	}
}

func (r *eventNoteRepository) Create(ctx context.Context, n *domain.EventNote) error {
	query := `
		INSERT INTO event_notes (id, event_id, author_name, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.DB.ExecContext(ctx, query,
		n.ID, n.EventID, n.AuthorName, n.Content, n.CreatedAt, n.UpdatedAt,
	)
	return err
}

// ListByEventID returns the event's notes oldest first, i.e. thread order.
func (r *eventNoteRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.EventNote, error) {
	query := `
		SELECT id, event_id, author_name, content, created_at, updated_at
		FROM event_notes
		WHERE event_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	notes := make([]*domain.EventNote, 0)
	for rows.Next() {
		n := &domain.EventNote{}
		if err := rows.Scan(&n.ID, &n.EventID, &n.AuthorName, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}
