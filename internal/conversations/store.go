package conversations

// ChatStore persists the ordered chat-session log.
//
// Like the profile store, reads degrade to an empty log on missing or
// corrupt files and writes report success as a boolean.
type ChatStore interface {
	LoadAll() []ChatSession
	Append(jobTitle string, messages []Message) (ChatSession, bool)
}

// ConversationStore persists AI conversations keyed by ID.
// Upsert generates an ID when none is supplied and always refreshes
// the lastUpdated timestamp.
type ConversationStore interface {
	LoadAll() map[string]AIConversation
	Get(id string) (AIConversation, bool)
	Upsert(id, jobTitle string, messages []Message) (string, bool)
}
