package profile

import (
	"sync"

	"resumecraft-backend/internal/shared/storage/jsonfile"
	"resumecraft-backend/internal/shared/telemetry"
)

// FileStore persists the profile as pretty-printed JSON at a fixed path.
// Writes are atomic and serialized; cross-process locking is intentionally
// absent (single interactive user).
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore constructs a FileStore backed by the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the stored profile, falling back to Default on any failure.
func (s *FileStore) Load() UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	var p UserProfile
	if err := jsonfile.Load(s.path, &p); err != nil {
		if err != jsonfile.ErrNotExist {
			telemetry.Error("profile.load.failed", map[string]any{
				"path": s.path,
				"err":  err.Error(),
			})
		}
		return Default()
	}
	return p
}

// Save writes the profile, reporting success as a boolean.
func (s *FileStore) Save(p UserProfile) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := jsonfile.Save(s.path, p); err != nil {
		telemetry.Error("profile.save.failed", map[string]any{
			"path": s.path,
			"err":  err.Error(),
		})
		return false
	}
	return true
}

var _ Store = (*FileStore)(nil)
