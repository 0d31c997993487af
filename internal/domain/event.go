package domain

import (
	"context"
	"time"
)

// Event is a calendar event. Optional columns are pointer fields so a nil
// value round-trips as SQL NULL and JSON null.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Course      *string   `json:"course"`
	EventType   string    `json:"event_type"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Location    *string   `json:"location"`
	Instructor  *string   `json:"instructor"`
	Priority    string    `json:"priority"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EventPatch is a partial update of an Event. Nil fields are left unchanged.
type EventPatch struct {
	Title       *string
	Description *string
	Course      *string
	EventType   *string
	StartTime   *time.Time
	EndTime     *time.Time
	Location    *string
	Instructor  *string
	Priority    *string
}

// EventDetails is the aggregate view of an event with its files and notes.
// The embedded Event flattens into the top-level JSON object.
type EventDetails struct {
	Event
	Files []*EventFile `json:"files"`
	Notes []*EventNote `json:"notes"`
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	List(ctx context.Context) ([]*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	Update(ctx context.Context, id string, patch EventPatch) (*Event, error)
	Delete(ctx context.Context, id string) error
}

// EventService defines the application operations on events.
type EventService interface {
	CreateEvent(ctx context.Context, event *Event) error
	ListEvents(ctx context.Context) ([]*Event, error)
	GetEvent(ctx context.Context, id string) (*Event, error)
	UpdateEvent(ctx context.Context, id string, patch EventPatch) (*Event, error)
	DeleteEvent(ctx context.Context, id string) error
	GetEventDetails(ctx context.Context, id string) (*EventDetails, error)
}
