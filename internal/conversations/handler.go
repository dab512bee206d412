package conversations

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"resumecraft-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the conversation stores.
type Handler struct {
	Chats         ChatStore
	Conversations ConversationStore
}

// NewHandler constructs a Handler.
func NewHandler(chats ChatStore, convs ConversationStore) *Handler {
	return &Handler{Chats: chats, Conversations: convs}
}

// RegisterRoutes attaches chat and AI-conversation routes to the group.
// The list route must be registered before the :id route.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/chat/save", h.saveChat)
	rg.GET("/chat/history", h.chatHistory)
	rg.POST("/ai-conversation/save", h.saveConversation)
	rg.GET("/ai-conversation/list", h.listConversations)
	rg.GET("/ai-conversation/:id", h.getConversation)
}

type saveChatRequest struct {
	ChatMessages []Message `json:"chatMessages"`
	JobTitle     string    `json:"jobTitle"`
}

func (h *Handler) saveChat(c *gin.Context) {
	var req saveChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	session, ok := h.Chats.Append(req.JobTitle, req.ChatMessages)
	if !ok {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to save chat history", nil)
		return
	}

	respond.OK(c, gin.H{
		"message": "Chat history saved successfully",
		"chatId":  session.ID,
	})
}

func (h *Handler) chatHistory(c *gin.Context) {
	respond.OK(c, h.Chats.LoadAll())
}

type saveConversationRequest struct {
	ConversationID string    `json:"conversationId"`
	JobTitle       string    `json:"jobTitle"`
	Messages       []Message `json:"messages"`
}

func (h *Handler) saveConversation(c *gin.Context) {
	var req saveConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	id, ok := h.Conversations.Upsert(req.ConversationID, req.JobTitle, req.Messages)
	if !ok {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to save conversation", nil)
		return
	}

	respond.OK(c, gin.H{
		"message":        "Conversation saved successfully",
		"conversationId": id,
	})
}

func (h *Handler) getConversation(c *gin.Context) {
	conv, ok := h.Conversations.Get(c.Param("id"))
	if !ok {
		respond.Error(c, http.StatusNotFound, "not_found", "Conversation not found", nil)
		return
	}
	respond.OK(c, conv)
}

func (h *Handler) listConversations(c *gin.Context) {
	all := h.Conversations.LoadAll()

	list := make([]Summary, 0, len(all))
	for id, conv := range all {
		list = append(list, Summary{
			ID:           id,
			JobTitle:     conv.JobTitle,
			LastUpdated:  conv.LastUpdated,
			MessageCount: len(conv.Messages),
		})
	}
	// Map iteration order is random; present newest first.
	sort.Slice(list, func(i, j int) bool {
		return list[i].LastUpdated > list[j].LastUpdated
	})

	respond.OK(c, list)
}
