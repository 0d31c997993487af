package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"studycalendar/internal/domain"
)

// DefaultMimeType is recorded when the upload carries no content type.
const DefaultMimeType = "application/octet-stream"

// DefaultUploadedBy is recorded when the upload carries no uploader attribution.
const DefaultUploadedBy = "Anonymous"

type fileService struct {
	fileRepo       domain.EventFileRepository
	store          domain.FileStore
	contextTimeout time.Duration
}

func NewFileService(fileRepo domain.EventFileRepository, store domain.FileStore, timeout time.Duration) domain.FileService {
	return &fileService{
		fileRepo:       fileRepo,
		store:          store,
		contextTimeout: timeout,
	}
}

// storageFilename derives the on-disk name from the file id and the original
// name's extension; with no extension the id alone is the name.
func storageFilename(id, originalFilename string) string {
	ext := filepath.Ext(originalFilename)
	if ext == "" {
		return id
	}
	return id + ext
}

// UploadFile writes the blob before inserting the metadata row. A crash in
// between leaves an orphaned blob, never a row pointing at a missing blob.
// The orphan is not cleaned up when the insert fails.
func (s *fileService) UploadFile(ctx context.Context, eventID string, upload domain.FileUpload) (*domain.EventFile, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if len(upload.Data) == 0 && upload.OriginalFilename == "" {
		return nil, fmt.Errorf("%w: no file provided", domain.ErrInvalidInput)
	}

	mimeType := upload.MimeType
	if mimeType == "" {
		mimeType = DefaultMimeType
	}
	uploadedBy := upload.UploadedBy
	if uploadedBy == "" {
		uploadedBy = DefaultUploadedBy
	}

	fileID := uuid.NewString()
	filename := storageFilename(fileID, upload.OriginalFilename)

	if err := s.store.Save(filename, upload.Data); err != nil {
		return nil, fmt.Errorf("save blob: %w", err)
	}

	file := &domain.EventFile{
		ID:               fileID,
		EventID:          eventID,
		Filename:         filename,
		OriginalFilename: upload.OriginalFilename,
		FileSize:         int64(len(upload.Data)),
		MimeType:         mimeType,
		UploadedBy:       uploadedBy,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.fileRepo.Create(ctx, file); err != nil {
		return nil, fmt.Errorf("save file record: %w", err)
	}
	return file, nil
}

func (s *fileService) DownloadFile(ctx context.Context, fileID string) (*domain.EventFile, []byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	file, err := s.fileRepo.GetByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, fmt.Errorf("get file record: %w", err)
	}

	data, err := s.store.Read(file.Filename)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, fmt.Errorf("read blob: %w", err)
	}
	return file, data, nil
}
