package profile

import "sync"

// MemoryStore keeps the profile in memory. Used by tests.
type MemoryStore struct {
	mu      sync.Mutex
	current UserProfile
	loaded  bool

	// FailSaves makes Save report failure, for exercising degrade paths.
	FailSaves bool
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns the stored profile, or Default before the first Save.
func (s *MemoryStore) Load() UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return Default()
	}
	return s.current
}

// Save stores the profile in memory.
func (s *MemoryStore) Save(p UserProfile) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailSaves {
		return false
	}
	s.current = p
	s.loaded = true
	return true
}

var _ Store = (*MemoryStore)(nil)
