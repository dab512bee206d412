package conversations

// Message is a single role-tagged chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatSession is one saved chat transcript. Sessions are append-only:
// every save produces a new entry with a fresh ID.
type ChatSession struct {
	ID        string    `json:"id"`
	JobTitle  string    `json:"jobTitle"`
	Timestamp string    `json:"timestamp"`
	Messages  []Message `json:"messages"`
}

// AIConversation is a keyed conversation transcript with upsert semantics.
type AIConversation struct {
	JobTitle    string    `json:"jobTitle"`
	LastUpdated string    `json:"lastUpdated"`
	Messages    []Message `json:"messages"`
}

// Summary is the listing shape for stored AI conversations.
type Summary struct {
	ID           string `json:"id"`
	JobTitle     string `json:"jobTitle"`
	LastUpdated  string `json:"lastUpdated"`
	MessageCount int    `json:"messageCount"`
}
