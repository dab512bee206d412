package tailor

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumecraft-backend/internal/extract"
	"resumecraft-backend/internal/llm"
	"resumecraft-backend/internal/shared/server/respond"
	"resumecraft-backend/internal/shared/telemetry"
)

// Handler wires HTTP handlers to the tailoring service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches generation and chat routes to the group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resume/generate", h.generate)
	rg.GET("/resume/text", h.resumeText)
	rg.POST("/chat/respond", h.chatRespond)
}

type generateRequest struct {
	JobTitle       string `json:"jobTitle"`
	JobDescription string `json:"jobDescription"`
}

func (h *Handler) generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	result, err := h.Svc.Generate(c.Request.Context(), req.JobTitle, req.JobDescription)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoResume):
			respond.Error(c, http.StatusBadRequest, "validation_error", "No uploaded resume file found. Please upload one named 'res'.", nil)
		case errors.Is(err, ErrSaveFailed):
			respond.Error(c, http.StatusInternalServerError, "internal_error", err.Error(), nil)
		default:
			telemetry.Error("tailor.generate.failed", map[string]any{"err": err.Error()})
			respond.Error(c, http.StatusInternalServerError, "upstream_error", "Failed to generate resume. Please try again.", nil)
		}
		return
	}

	respond.OK(c, result)
}

func (h *Handler) resumeText(c *gin.Context) {
	path, ok := h.Svc.Slot.Current()
	if !ok {
		respond.Error(c, http.StatusNotFound, "not_found", "No uploaded resume file found", nil)
		return
	}
	text, err := extract.Text(path)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to extract resume text", nil)
		return
	}
	respond.OK(c, gin.H{"text": text})
}

type chatRespondRequest struct {
	Messages []llm.Message `json:"messages"`
}

func (h *Handler) chatRespond(c *gin.Context) {
	var req chatRespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	reply, err := h.Svc.ChatRespond(c.Request.Context(), req.Messages)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoMessages):
			respond.Error(c, http.StatusBadRequest, "validation_error", "No messages provided", nil)
		default:
			telemetry.Error("tailor.chat.failed", map[string]any{"err": err.Error()})
			respond.Error(c, http.StatusInternalServerError, "upstream_error", err.Error(), nil)
		}
		return
	}

	respond.OK(c, gin.H{"reply": reply})
}
