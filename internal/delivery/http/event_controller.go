package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"studycalendar/internal/domain"
)

// pathUUID reads the named path parameter and validates it is a UUID.
// On a missing or malformed value it writes a 400 and returns false.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	raw := r.PathValue(name)
	if raw == "" {
		WriteJSONError(w, http.StatusBadRequest, "missing "+name)
		return "", false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, name+" must be a valid UUID")
		return "", false
	}
	return id.String(), true
}

// parseTimestamp parses an RFC 3339 timestamp from a request field.
func parseTimestamp(value string) (time.Time, error) {
	return time.Parse(time.RFC3339, value)
}

// CreateEventRequest is the request body for POST /api/events.
// start_time and end_time are RFC 3339 timestamps.
type CreateEventRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Course      *string `json:"course"`
	EventType   string  `json:"event_type"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Location    *string `json:"location"`
	Instructor  *string `json:"instructor"`
	Priority    *string `json:"priority"`
}

// Validate implements Validator.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	if c.Title == "" {
		errs = append(errs, "title is required")
	}
	if c.EventType == "" {
		errs = append(errs, "event_type is required")
	}
	if c.StartTime == "" {
		errs = append(errs, "start_time is required")
	}
	if c.EndTime == "" {
		errs = append(errs, "end_time is required")
	}
	return errs
}

// EventSuccessResponse is the success envelope carrying a single event.
type EventSuccessResponse struct {
	Success bool          `json:"success"`
	Data    *domain.Event `json:"data"`
	Message *string       `json:"message"`
}

// EventListSuccessResponse is the success envelope carrying a list of events.
type EventListSuccessResponse struct {
	Success bool            `json:"success"`
	Data    []*domain.Event `json:"data"`
	Message *string         `json:"message"`
}

// EventDetailsSuccessResponse is the success envelope for the details view.
type EventDetailsSuccessResponse struct {
	Success bool                 `json:"success"`
	Data    *domain.EventDetails `json:"data"`
	Message *string              `json:"message"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Create a calendar event. id, created_at and updated_at are server-generated; priority defaults to "medium" when omitted.
// @Tags events
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "Event data"
// @Success 200 {object} http.EventSuccessResponse "data contains the created event"
// @Failure 400 {object} http.APIResponse
// @Failure 500 {object} http.APIResponse
// @Router /api/events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !DecodeAndValidate(w, r, &req) {
		return
	}
	start, err := parseTimestamp(req.StartTime)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "start_time must be a valid RFC 3339 timestamp")
		return
	}
	end, err := parseTimestamp(req.EndTime)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "end_time must be a valid RFC 3339 timestamp")
		return
	}
	event := &domain.Event{
		Title:       req.Title,
		Description: req.Description,
		Course:      req.Course,
		EventType:   req.EventType,
		StartTime:   start,
		EndTime:     end,
		Location:    req.Location,
		Instructor:  req.Instructor,
	}
	if req.Priority != nil {
		event.Priority = *req.Priority
	}
	if err := c.Service.CreateEvent(r.Context(), event); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	WriteJSONSuccess(w, http.StatusOK, event)
}

// ListEvents godoc
// @Summary List all events
// @Description Returns every event ordered by start_time ascending.
// @Tags events
// @Produce json
// @Success 200 {object} http.EventListSuccessResponse "data is an array of events"
// @Failure 500 {object} http.APIResponse
// @Router /api/events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListEvents(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if events == nil {
		events = []*domain.Event{}
	}
	WriteJSONSuccess(w, http.StatusOK, events)
}

// GetEvent godoc
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} http.EventSuccessResponse "data contains the event"
// @Failure 400 {object} http.APIResponse
// @Failure 404 {object} http.APIResponse
// @Failure 500 {object} http.APIResponse
// @Router /api/events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	event, err := c.Service.GetEvent(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteJSONError(w, http.StatusNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	WriteJSONSuccess(w, http.StatusOK, event)
}

// UpdateEventRequest is the request body for PUT /api/events/{eventID}.
// All fields are optional; omitted fields are unchanged.
type UpdateEventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Course      *string `json:"course"`
	EventType   *string `json:"event_type"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	Location    *string `json:"location"`
	Instructor  *string `json:"instructor"`
	Priority    *string `json:"priority"`
}

// Validate implements Validator.
func (u UpdateEventRequest) Validate() []string {
	var errs []string
	if u.Title != nil && *u.Title == "" {
		errs = append(errs, "title cannot be empty")
	}
	if u.EventType != nil && *u.EventType == "" {
		errs = append(errs, "event_type cannot be empty")
	}
	return errs
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Partial update: only fields present in the body change; omitted fields retain their prior value. updated_at is refreshed.
// @Tags events
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Param body body UpdateEventRequest true "Fields to update (all optional)"
// @Success 200 {object} http.EventSuccessResponse "data contains the updated event"
// @Failure 400 {object} http.APIResponse
// @Failure 404 {object} http.APIResponse
// @Failure 500 {object} http.APIResponse
// @Router /api/events/{eventID} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	var req UpdateEventRequest
	if !DecodeAndValidate(w, r, &req) {
		return
	}
	patch := domain.EventPatch{
		Title:       req.Title,
		Description: req.Description,
		Course:      req.Course,
		EventType:   req.EventType,
		Location:    req.Location,
		Instructor:  req.Instructor,
		Priority:    req.Priority,
	}
	if req.StartTime != nil {
		start, err := parseTimestamp(*req.StartTime)
		if err != nil {
			WriteJSONError(w, http.StatusBadRequest, "start_time must be a valid RFC 3339 timestamp")
			return
		}
		patch.StartTime = &start
	}
	if req.EndTime != nil {
		end, err := parseTimestamp(*req.EndTime)
		if err != nil {
			WriteJSONError(w, http.StatusBadRequest, "end_time must be a valid RFC 3339 timestamp")
			return
		}
		patch.EndTime = &end
	}
	event, err := c.Service.UpdateEvent(r.Context(), eventID, patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteJSONError(w, http.StatusNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	WriteJSONSuccess(w, http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Hard delete. Deleting a nonexistent id succeeds; the database cascades to the event's files and notes.
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} http.APIResponse "data is null"
// @Failure 400 {object} http.APIResponse
// @Failure 500 {object} http.APIResponse
// @Router /api/events/{eventID} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	if err := c.Service.DeleteEvent(r.Context(), eventID); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	WriteJSONSuccess(w, http.StatusOK, nil)
}

// GetEventDetails godoc
// @Summary Get an event with its files and notes
// @Description Returns the event flattened with files (newest first) and notes (oldest first). An event with no files or notes returns empty lists.
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} http.EventDetailsSuccessResponse "data contains the event, files, and notes"
// @Failure 400 {object} http.APIResponse
// @Failure 404 {object} http.APIResponse
// @Failure 500 {object} http.APIResponse
// @Router /api/events/{eventID}/details [get]
func (c *EventController) GetEventDetails(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	details, err := c.Service.GetEventDetails(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteJSONError(w, http.StatusNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	WriteJSONSuccess(w, http.StatusOK, details)
}
