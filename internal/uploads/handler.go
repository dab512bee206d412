package uploads

import (
	"errors"
	"net/http"
	"path"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"resumecraft-backend/internal/shared/server/respond"
	"resumecraft-backend/internal/shared/telemetry"
)

const maxUploadBytes = 10 << 20 // 10MB

// ErrInvalidInput reports a rejected upload.
var ErrInvalidInput = errors.New("invalid upload")

// Handler accepts resume uploads into the canonical slot.
type Handler struct {
	Slot *SlotStore
}

// NewHandler constructs a Handler.
func NewHandler(slot *SlotStore) *Handler {
	return &Handler{Slot: slot}
}

// RegisterRoutes attaches the upload route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resume/upload", h.upload)
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "No file part", nil)
		return
	}
	if fileHeader.Filename == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "No selected file", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	ext := filepath.Ext(fileHeader.Filename)
	fileName, err := h.Slot.Put(ext, file)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			return
		}
		telemetry.Error("uploads.save.failed", map[string]any{"err": err.Error()})
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Resume upload failed", nil)
		return
	}

	respond.OK(c, gin.H{
		"message":  "Resume uploaded and saved as 'res' successfully",
		"filename": fileName,
		"path":     path.Join("resumes", fileName),
	})
}
