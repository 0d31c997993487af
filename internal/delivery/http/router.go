package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter initializes the HTTP router with all application routes.
// Static assets from staticDir are served at the root path.
func NewRouter(events *EventController, files *FileController, notes *NoteController, staticDir string) *http.ServeMux {
	mux := http.NewServeMux()

	// Events
	mux.HandleFunc("GET /api/events", events.ListEvents)
	mux.HandleFunc("POST /api/events", events.CreateEvent)
	mux.HandleFunc("GET /api/events/{eventID}", events.GetEvent)
	mux.HandleFunc("PUT /api/events/{eventID}", events.UpdateEvent)
	mux.HandleFunc("DELETE /api/events/{eventID}", events.DeleteEvent)
	mux.HandleFunc("GET /api/events/{eventID}/details", events.GetEventDetails)

	// File attachments
	mux.HandleFunc("POST /api/events/{eventID}/files", files.UploadFile)
	mux.HandleFunc("GET /api/files/{fileID}/download", files.DownloadFile)

	// Notes
	mux.HandleFunc("GET /api/events/{eventID}/notes", notes.ListNotes)
	mux.HandleFunc("POST /api/events/{eventID}/notes", notes.AddNote)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// Static frontend
	mux.Handle("/", http.FileServer(http.Dir(staticDir)))

	return mux
}
