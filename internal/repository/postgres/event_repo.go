package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"studycalendar/internal/domain"
)

const eventColumns = "id, title, description, course, event_type, start_time, end_time, location, instructor, priority, created_at, updated_at"

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(s scanner) (*domain.Event, error) {
	e := &domain.Event{}
	var descNull, courseNull, locNull, instrNull sql.NullString
	err := s.Scan(
		&e.ID, &e.Title, &descNull, &courseNull, &e.EventType,
		&e.StartTime, &e.EndTime, &locNull, &instrNull, &e.Priority,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if descNull.Valid {
		e.Description = &descNull.String
	}
	if courseNull.Valid {
		e.Course = &courseNull.String
	}
	if locNull.Valid {
		e.Location = &locNull.String
	}
	if instrNull.Valid {
		e.Instructor = &instrNull.String
	}
	return e, nil
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (id, title, description, course, event_type, start_time, end_time, location, instructor, priority, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.DB.ExecContext(ctx, query,
		e.ID, e.Title, e.Description, e.Course, e.EventType,
		e.StartTime, e.EndTime, e.Location, e.Instructor, e.Priority,
		e.CreatedAt, e.UpdatedAt,
	)
	return err
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		ORDER BY start_time ASC, id ASC
	`, eventColumns)
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		WHERE id = $1
	`, eventColumns)
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Update(ctx context.Context, id string, patch domain.EventPatch) (*domain.Event, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	n := 1
	add := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, n))
		args = append(args, value)
		n++
	}
	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Course != nil {
		add("course", *patch.Course)
	}
	if patch.EventType != nil {
		add("event_type", *patch.EventType)
	}
	if patch.StartTime != nil {
		add("start_time", *patch.StartTime)
	}
	if patch.EndTime != nil {
		add("end_time", *patch.EndTime)
	}
	if patch.Location != nil {
		add("location", *patch.Location)
	}
	if patch.Instructor != nil {
		add("instructor", *patch.Instructor)
	}
	if patch.Priority != nil {
		add("priority", *patch.Priority)
	}
	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE events SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), n, eventColumns)
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

// Delete removes the event row. Deleting an id that does not exist is not an
// error; DELETE affecting zero rows still succeeds.
func (r *eventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id = $1`
	_, err := r.DB.ExecContext(ctx, query, id)
	return err
}
