package domain

import (
	"context"
	"time"
)

// EventFile is the metadata row for an uploaded blob. The blob itself lives in
// a FileStore keyed by Filename; OriginalFilename is kept for display and
// download headers only.
type EventFile struct {
	ID               string    `json:"id"`
	EventID          string    `json:"event_id"`
	Filename         string    `json:"filename"`
	OriginalFilename string    `json:"original_filename"`
	FileSize         int64     `json:"file_size"`
	MimeType         string    `json:"mime_type"`
	UploadedBy       string    `json:"uploaded_by"`
	CreatedAt        time.Time `json:"created_at"`
}

// FileUpload is the parsed content of a multipart upload request.
type FileUpload struct {
	OriginalFilename string
	MimeType         string
	UploadedBy       string
	Data             []byte
}

// EventFileRepository defines the interface for file metadata storage.
type EventFileRepository interface {
	Create(ctx context.Context, file *EventFile) error
	GetByID(ctx context.Context, id string) (*EventFile, error)
	ListByEventID(ctx context.Context, eventID string) ([]*EventFile, error)
}

// FileStore holds uploaded blobs outside the relational store.
// Read returns ErrNotFound when no blob exists under the given name.
type FileStore interface {
	Save(name string, data []byte) error
	Read(name string) ([]byte, error)
}

// FileService defines upload and download of event file attachments.
type FileService interface {
	UploadFile(ctx context.Context, eventID string, upload FileUpload) (*EventFile, error)
	DownloadFile(ctx context.Context, fileID string) (*EventFile, []byte, error)
}
