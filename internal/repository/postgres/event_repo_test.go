package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"studycalendar/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

var eventCols = []string{"id", "title", "description", "course", "event_type", "start_time", "end_time", "location", "instructor", "priority", "created_at", "updated_at"}

func strPtr(s string) *string { return &s }

func TestEventRepository_Create(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		event   *domain.Event
		mock    func(mock sqlmock.Sqlmock)
		wantErr bool
	}{
		{
			name: "success",
			event: &domain.Event{
				ID:        "ev-uuid-1",
				Title:     "Midterm",
				Course:    strPtr("CS101"),
				EventType: "exam",
				StartTime: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
				EndTime:   time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
				Priority:  "medium",
				CreatedAt: created,
				UpdatedAt: created,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO events \(id, title, description, course, event_type, start_time, end_time, location, instructor, priority, created_at, updated_at\)`).
					WithArgs("ev-uuid-1", "Midterm", nil, strPtr("CS101"), "exam",
						time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
						nil, nil, "medium", created, created).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			wantErr: false,
		},
		{
			name: "db error",
			event: &domain.Event{
				ID:        "ev-uuid-2",
				Title:     "Lecture",
				EventType: "class",
				StartTime: time.Now(),
				EndTime:   time.Now(),
				Priority:  "medium",
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO events`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			err = repo.Create(ctx, tt.event)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_List(t *testing.T) {
	ctx := context.Background()
	t1 := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		want    []*domain.Event
		wantErr bool
	}{
		{
			name: "success multiple",
			mock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(eventCols).
					AddRow("ev-1", "Midterm", nil, "CS101", "exam", t1, t1.Add(2*time.Hour), nil, nil, "high", t1, t1).
					AddRow("ev-2", "Lecture", "Weekly lecture", nil, "class", t2, t2.Add(time.Hour), "Room 4", "Dr. Lee", "medium", t1, t1)
				mock.ExpectQuery(`SELECT id, title, description, course, event_type, start_time, end_time, location, instructor, priority, created_at, updated_at\s+FROM events\s+ORDER BY start_time ASC, id ASC`).
					WillReturnRows(rows)
			},
			want: []*domain.Event{
				{ID: "ev-1", Title: "Midterm", Course: strPtr("CS101"), EventType: "exam", StartTime: t1, EndTime: t1.Add(2 * time.Hour), Priority: "high", CreatedAt: t1, UpdatedAt: t1},
				{ID: "ev-2", Title: "Lecture", Description: strPtr("Weekly lecture"), EventType: "class", StartTime: t2, EndTime: t2.Add(time.Hour), Location: strPtr("Room 4"), Instructor: strPtr("Dr. Lee"), Priority: "medium", CreatedAt: t1, UpdatedAt: t1},
			},
			wantErr: false,
		},
		{
			name: "success empty",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, title, description, course, event_type`).
					WillReturnRows(sqlmock.NewRows(eventCols))
			},
			want:    []*domain.Event{},
			wantErr: false,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, title, description, course, event_type`).
					WillReturnError(sql.ErrConnDone)
			},
			want:    nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			got, err := repo.List(ctx)
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, got)
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	t1 := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		id      string
		mock    func(mock sqlmock.Sqlmock)
		want    *domain.Event
		wantErr error
	}{
		{
			name: "success",
			id:   "ev-1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, title, description, course, event_type`).
					WithArgs("ev-1").
					WillReturnRows(sqlmock.NewRows(eventCols).
						AddRow("ev-1", "Midterm", nil, nil, "exam", t1, t1.Add(2*time.Hour), nil, nil, "medium", t1, t1))
			},
			want: &domain.Event{ID: "ev-1", Title: "Midterm", EventType: "exam", StartTime: t1, EndTime: t1.Add(2 * time.Hour), Priority: "medium", CreatedAt: t1, UpdatedAt: t1},
		},
		{
			name: "not found",
			id:   "ev-missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, title, description, course, event_type`).
					WithArgs("ev-missing").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			got, err := repo.GetByID(ctx, tt.id)
			if tt.wantErr != nil {
				require.True(t, errors.Is(err, tt.wantErr))
				require.Nil(t, got)
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_Update(t *testing.T) {
	ctx := context.Background()
	t1 := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("partial update binds only present fields", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`UPDATE events SET updated_at = NOW\(\), title = \$1, priority = \$2\s+WHERE id = \$3`).
			WithArgs("Final exam", "high", "ev-1").
			WillReturnRows(sqlmock.NewRows(eventCols).
				AddRow("ev-1", "Final exam", "bring a calculator", nil, "exam", t1, t1.Add(2*time.Hour), nil, nil, "high", t1, t1.Add(time.Minute)))

		repo := NewEventRepository(db)
		got, err := repo.Update(ctx, "ev-1", domain.EventPatch{
			Title:    strPtr("Final exam"),
			Priority: strPtr("high"),
		})
		require.NoError(t, err)
		require.Equal(t, "Final exam", got.Title)
		require.Equal(t, "high", got.Priority)
		// omitted field kept its stored value
		require.Equal(t, strPtr("bring a calculator"), got.Description)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`UPDATE events SET updated_at = NOW\(\), title = \$1`).
			WithArgs("X", "ev-missing").
			WillReturnError(sql.ErrNoRows)

		repo := NewEventRepository(db)
		got, err := repo.Update(ctx, "ev-missing", domain.EventPatch{Title: strPtr("X")})
		require.True(t, errors.Is(err, domain.ErrNotFound))
		require.Nil(t, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty patch still refreshes updated_at", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`UPDATE events SET updated_at = NOW\(\)\s+WHERE id = \$1`).
			WithArgs("ev-1").
			WillReturnRows(sqlmock.NewRows(eventCols).
				AddRow("ev-1", "Midterm", nil, nil, "exam", t1, t1.Add(2*time.Hour), nil, nil, "medium", t1, t1.Add(time.Minute)))

		repo := NewEventRepository(db)
		got, err := repo.Update(ctx, "ev-1", domain.EventPatch{})
		require.NoError(t, err)
		require.Equal(t, "Midterm", got.Title)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEventRepository_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		id      string
		mock    func(mock sqlmock.Sqlmock)
		wantErr bool
	}{
		{
			name: "success",
			id:   "ev-1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
					WithArgs("ev-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			wantErr: false,
		},
		{
			name: "nonexistent id is not an error",
			id:   "ev-missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
					WithArgs("ev-missing").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: false,
		},
		{
			name: "db error",
			id:   "ev-1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
					WithArgs("ev-1").
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			err = repo.Delete(ctx, tt.id)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
