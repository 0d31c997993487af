package postgres

import (
	"context"
	"database/sql"
	"errors"

	"studycalendar/internal/domain"
)

type eventFileRepository struct {
	DB *sql.DB
}

func NewEventFileRepository(db *sql.DB) domain.EventFileRepository {
	return &eventFileRepository{
		DB: db,
	}
}

func (r *eventFileRepository) Create(ctx context.Context, f *domain.EventFile) error {
	query := `
		INSERT INTO event_files (id, event_id, filename, original_filename, file_size, mime_type, uploaded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.DB.ExecContext(ctx, query,
		f.ID, f.EventID, f.Filename, f.OriginalFilename,
		f.FileSize, f.MimeType, f.UploadedBy, f.CreatedAt,
	)
	return err
}

func (r *eventFileRepository) GetByID(ctx context.Context, id string) (*domain.EventFile, error) {
	query := `
		SELECT id, event_id, filename, original_filename, file_size, mime_type, uploaded_by, created_at
		FROM event_files
		WHERE id = $1
	`
	f := &domain.EventFile{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&f.ID, &f.EventID, &f.Filename, &f.OriginalFilename,
		&f.FileSize, &f.MimeType, &f.UploadedBy, &f.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

// ListByEventID returns the event's files newest first.
func (r *eventFileRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.EventFile, error) {
	query := `
		SELECT id, event_id, filename, original_filename, file_size, mime_type, uploaded_by, created_at
		FROM event_files
		WHERE event_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	files := make([]*domain.EventFile, 0)
	for rows.Next() {
		f := &domain.EventFile{}
		if err := rows.Scan(
			&f.ID, &f.EventID, &f.Filename, &f.OriginalFilename,
			&f.FileSize, &f.MimeType, &f.UploadedBy, &f.CreatedAt,
		); err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, rows.Err()
}
