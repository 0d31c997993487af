package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"studycalendar/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory FileStore for tests.
type fakeStore struct {
	blobs   map[string][]byte
	saveErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{blobs: make(map[string][]byte)}
}

func (f *fakeStore) Save(name string, data []byte) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.blobs[name] = data
	return nil
}

func (f *fakeStore) Read(name string) ([]byte, error) {
	if data, ok := f.blobs[name]; ok {
		return data, nil
	}
	return nil, domain.ErrNotFound
}

func TestFileService_UploadFile(t *testing.T) {
	ctx := context.Background()

	t.Run("stores blob under id plus extension", func(t *testing.T) {
		repo := newFakeFileRepo()
		store := newFakeStore()
		svc := NewFileService(repo, store, time.Second)

		data := []byte("pdf bytes")
		file, err := svc.UploadFile(ctx, "ev-1", domain.FileUpload{
			OriginalFilename: "report.pdf",
			MimeType:         "application/pdf",
			UploadedBy:       "Sam",
			Data:             data,
		})
		require.NoError(t, err)

		assert.NotEmpty(t, file.ID)
		assert.Equal(t, file.ID+".pdf", file.Filename)
		assert.Equal(t, "report.pdf", file.OriginalFilename)
		assert.Equal(t, int64(len(data)), file.FileSize)
		assert.Equal(t, "Sam", file.UploadedBy)
		assert.Equal(t, data, store.blobs[file.Filename])
		_, ok := repo.byID[file.ID]
		assert.True(t, ok)
	})

	t.Run("no extension means bare id", func(t *testing.T) {
		svc := NewFileService(newFakeFileRepo(), newFakeStore(), time.Second)
		file, err := svc.UploadFile(ctx, "ev-1", domain.FileUpload{
			OriginalFilename: "README",
			Data:             []byte("x"),
		})
		require.NoError(t, err)
		assert.Equal(t, file.ID, file.Filename)
	})

	t.Run("defaults applied", func(t *testing.T) {
		svc := NewFileService(newFakeFileRepo(), newFakeStore(), time.Second)
		file, err := svc.UploadFile(ctx, "ev-1", domain.FileUpload{
			OriginalFilename: "data.bin",
			Data:             []byte{0x01},
		})
		require.NoError(t, err)
		assert.Equal(t, "application/octet-stream", file.MimeType)
		assert.Equal(t, "Anonymous", file.UploadedBy)
	})

	t.Run("store failure prevents the row", func(t *testing.T) {
		repo := newFakeFileRepo()
		store := newFakeStore()
		store.saveErr = errors.New("disk full")
		svc := NewFileService(repo, store, time.Second)

		_, err := svc.UploadFile(ctx, "ev-1", domain.FileUpload{OriginalFilename: "a.txt", Data: []byte("x")})
		require.Error(t, err)
		assert.Empty(t, repo.byID)
	})

	t.Run("insert failure leaves the blob orphaned", func(t *testing.T) {
		repo := newFakeFileRepo()
		repo.createErr = errors.New("insert failed")
		store := newFakeStore()
		svc := NewFileService(repo, store, time.Second)

		_, err := svc.UploadFile(ctx, "ev-1", domain.FileUpload{OriginalFilename: "a.txt", Data: []byte("x")})
		require.Error(t, err)
		// blob was written first and is not rolled back
		assert.Len(t, store.blobs, 1)
	})
}

func TestFileService_DownloadFile(t *testing.T) {
	ctx := context.Background()

	t.Run("round-trip returns the exact bytes", func(t *testing.T) {
		repo := newFakeFileRepo()
		store := newFakeStore()
		svc := NewFileService(repo, store, time.Second)

		data := []byte{0xde, 0xad, 0xbe, 0xef}
		uploaded, err := svc.UploadFile(ctx, "ev-1", domain.FileUpload{
			OriginalFilename: "report.pdf",
			MimeType:         "application/pdf",
			Data:             data,
		})
		require.NoError(t, err)

		file, got, err := svc.DownloadFile(ctx, uploaded.ID)
		require.NoError(t, err)
		assert.Equal(t, data, got)
		assert.Equal(t, "report.pdf", file.OriginalFilename)
		assert.Equal(t, "application/pdf", file.MimeType)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc := NewFileService(newFakeFileRepo(), newFakeStore(), time.Second)
		_, _, err := svc.DownloadFile(ctx, "f-missing")
		require.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("metadata without blob is not-found", func(t *testing.T) {
		repo := newFakeFileRepo()
		store := newFakeStore()
		svc := NewFileService(repo, store, time.Second)

		uploaded, err := svc.UploadFile(ctx, "ev-1", domain.FileUpload{OriginalFilename: "a.txt", Data: []byte("x")})
		require.NoError(t, err)
		delete(store.blobs, uploaded.Filename)

		_, _, err = svc.DownloadFile(ctx, uploaded.ID)
		require.True(t, errors.Is(err, domain.ErrNotFound))
	})
}
