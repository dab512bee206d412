package profile

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumecraft-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the profile service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches profile routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/profile", h.get)
	rg.POST("/profile/update", h.update)
	rg.PUT("/profile/education/:id", h.updateEducation)
}

func (h *Handler) get(c *gin.Context) {
	respond.OK(c, h.Svc.Get())
}

func (h *Handler) update(c *gin.Context) {
	var patch map[string]json.RawMessage
	if err := c.ShouldBindJSON(&patch); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	if _, err := h.Svc.UpdateProfile(patch); err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save profile data", nil)
		}
		return
	}

	respond.OK(c, gin.H{"message": "Profile updated successfully"})
}

func (h *Handler) updateEducation(c *gin.Context) {
	id := c.Param("id")

	var patch map[string]json.RawMessage
	if err := c.ShouldBindJSON(&patch); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	entry, err := h.Svc.UpdateEducation(id, patch)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Education entry not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save education data", nil)
		}
		return
	}

	respond.OK(c, gin.H{
		"message":   "Education entry updated successfully",
		"education": entry,
	})
}
