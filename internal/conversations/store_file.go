package conversations

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"resumecraft-backend/internal/shared/storage/jsonfile"
	"resumecraft-backend/internal/shared/telemetry"
)

// FileChatStore persists chat sessions as a JSON array on disk.
type FileChatStore struct {
	mu   sync.Mutex
	path string
}

// NewFileChatStore constructs a FileChatStore backed by the given path.
func NewFileChatStore(path string) *FileChatStore {
	return &FileChatStore{path: path}
}

// LoadAll returns every saved chat session in save order.
func (s *FileChatStore) LoadAll() []ChatSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

// Append saves a new chat session with a fresh ID and current timestamp.
func (s *FileChatStore) Append(jobTitle string, messages []Message) (ChatSession, bool) {
	if jobTitle == "" {
		jobTitle = "Untitled Job"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session := ChatSession{
		ID:        uuid.NewString(),
		JobTitle:  jobTitle,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Messages:  messages,
	}

	history := append(s.loadLocked(), session)
	if err := jsonfile.Save(s.path, history); err != nil {
		telemetry.Error("chat.save.failed", map[string]any{"path": s.path, "err": err.Error()})
		return ChatSession{}, false
	}
	return session, true
}

func (s *FileChatStore) loadLocked() []ChatSession {
	var history []ChatSession
	if err := jsonfile.Load(s.path, &history); err != nil {
		if err != jsonfile.ErrNotExist {
			telemetry.Error("chat.load.failed", map[string]any{"path": s.path, "err": err.Error()})
		}
		return []ChatSession{}
	}
	return history
}

// FileConversationStore persists AI conversations as a JSON object keyed
// by conversation ID.
type FileConversationStore struct {
	mu   sync.Mutex
	path string
}

// NewFileConversationStore constructs a FileConversationStore.
func NewFileConversationStore(path string) *FileConversationStore {
	return &FileConversationStore{path: path}
}

// LoadAll returns every stored conversation keyed by ID.
func (s *FileConversationStore) LoadAll() map[string]AIConversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

// Get returns the conversation with the given ID.
func (s *FileConversationStore) Get(id string) (AIConversation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv, ok := s.loadLocked()[id]
	return conv, ok
}

// Upsert inserts or replaces the conversation with the given ID,
// generating an ID when none is supplied.
func (s *FileConversationStore) Upsert(id, jobTitle string, messages []Message) (string, bool) {
	if id == "" {
		id = uuid.NewString()
	}
	if jobTitle == "" {
		jobTitle = "Untitled Job"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.loadLocked()
	all[id] = AIConversation{
		JobTitle:    jobTitle,
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
		Messages:    messages,
	}
	if err := jsonfile.Save(s.path, all); err != nil {
		telemetry.Error("conversation.save.failed", map[string]any{"path": s.path, "err": err.Error()})
		return "", false
	}
	return id, true
}

func (s *FileConversationStore) loadLocked() map[string]AIConversation {
	conversations := map[string]AIConversation{}
	if err := jsonfile.Load(s.path, &conversations); err != nil {
		if err != jsonfile.ErrNotExist {
			telemetry.Error("conversation.load.failed", map[string]any{"path": s.path, "err": err.Error()})
		}
		return map[string]AIConversation{}
	}
	return conversations
}

var (
	_ ChatStore         = (*FileChatStore)(nil)
	_ ConversationStore = (*FileConversationStore)(nil)
)
