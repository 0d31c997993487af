package blob

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"studycalendar/internal/domain"
)

// LocalStore keeps uploaded blobs as plain files under a single directory.
// Names are server-generated identifiers, never client input, so no path
// sanitization happens here.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{dir: dir}
}

// Save writes the blob under the given name, creating the storage directory
// on first use.
func (s *LocalStore) Save(name string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, name), data, 0o644)
}

// Read returns the blob's bytes. A missing blob is domain.ErrNotFound so a
// metadata row pointing at a deleted file surfaces as not-found, not as a
// server failure.
func (s *LocalStore) Read(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return data, nil
}
