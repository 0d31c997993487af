package http

import (
	"errors"
	"log/slog"
	"net/http"

	"studycalendar/internal/domain"
)

// CreateNoteRequest is the request body for POST /api/events/{eventID}/notes.
type CreateNoteRequest struct {
	AuthorName string `json:"author_name"`
	Content    string `json:"content"`
}

// Validate implements Validator.
func (c CreateNoteRequest) Validate() []string {
	var errs []string
	if c.AuthorName == "" {
		errs = append(errs, "author_name is required")
	}
	if c.Content == "" {
		errs = append(errs, "content is required")
	}
	return errs
}

// NoteSuccessResponse is the success envelope carrying a single note.
type NoteSuccessResponse struct {
	Success bool              `json:"success"`
	Data    *domain.EventNote `json:"data"`
	Message *string           `json:"message"`
}

// NoteListSuccessResponse is the success envelope carrying a list of notes.
type NoteListSuccessResponse struct {
	Success bool                `json:"success"`
	Data    []*domain.EventNote `json:"data"`
	Message *string             `json:"message"`
}

type NoteController struct {
	Logger  *slog.Logger
	Service domain.NoteService
}

func NewNoteController(logger *slog.Logger, svc domain.NoteService) *NoteController {
	return &NoteController{
		Logger:  logger,
		Service: svc,
	}
}

// AddNote godoc
// @Summary Add a note to an event
// @Description Appends a note to the event's thread. id and timestamps are server-generated.
// @Tags notes
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Param note body CreateNoteRequest true "Note data"
// @Success 200 {object} http.NoteSuccessResponse "data contains the created note"
// @Failure 400 {object} http.APIResponse
// @Failure 500 {object} http.APIResponse
// @Router /api/events/{eventID}/notes [post]
func (c *NoteController) AddNote(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	var req CreateNoteRequest
	if !DecodeAndValidate(w, r, &req) {
		return
	}
	note := &domain.EventNote{
		EventID:    eventID,
		AuthorName: req.AuthorName,
		Content:    req.Content,
	}
	if err := c.Service.AddNote(r.Context(), note); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	WriteJSONSuccess(w, http.StatusOK, note)
}

// ListNotes godoc
// @Summary List notes for an event
// @Description Returns the event's notes oldest first (thread order).
// @Tags notes
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} http.NoteListSuccessResponse "data is an array of notes"
// @Failure 400 {object} http.APIResponse
// @Failure 500 {object} http.APIResponse
// @Router /api/events/{eventID}/notes [get]
func (c *NoteController) ListNotes(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	notes, err := c.Service.ListNotes(r.Context(), eventID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if notes == nil {
		notes = []*domain.EventNote{}
	}
	WriteJSONSuccess(w, http.StatusOK, notes)
}
