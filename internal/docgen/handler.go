package docgen

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resumecraft-backend/internal/extract"
	"resumecraft-backend/internal/profile"
	"resumecraft-backend/internal/shared/metrics"
	"resumecraft-backend/internal/shared/server/respond"
	"resumecraft-backend/internal/shared/telemetry"
)

// Handler serves document downloads: it resolves the content to export,
// classifies it, assembles the layout and streams the rendered file.
type Handler struct {
	Profiles   *profile.Service
	ResumesDir string
	PDF        *PDFRenderer
}

// NewHandler constructs a Handler.
func NewHandler(profiles *profile.Service, resumesDir string, pdfRenderer *PDFRenderer) *Handler {
	return &Handler{Profiles: profiles, ResumesDir: resumesDir, PDF: pdfRenderer}
}

// RegisterRoutes attaches the download route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/document/download", h.download)
}

type downloadRequest struct {
	Content  string `json:"content"`
	FileName string `json:"fileName"`
	Format   string `json:"format"`
}

func (h *Handler) download(c *gin.Context) {
	var req downloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.FileName == "" {
		req.FileName = "document"
	}

	userProfile := h.Profiles.Get()

	// Empty content means "export the current resume".
	content := req.Content
	if strings.TrimSpace(content) == "" {
		latest, ok := userProfile.LatestResume()
		if !ok {
			respond.Error(c, http.StatusNotFound, "not_found", "No resume found", nil)
			return
		}
		content = latest.Content
	}

	var doc Document
	if Classify(content) == KindCoverLetter {
		doc = BuildCoverLetter(content)
	} else {
		doc = BuildResume(userProfile, content, extract.AdditionalSections(h.ResumesDir))
	}

	switch strings.ToLower(req.Format) {
	case "pdf":
		path, err := h.PDF.RenderPDF(doc, req.FileName)
		if err != nil {
			telemetry.Error("docgen.pdf.failed", map[string]any{"err": err.Error(), "kind": doc.Kind.String()})
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to generate PDF", nil)
			return
		}
		metrics.IncDocumentExported()
		c.FileAttachment(path, safeBaseName(req.FileName)+".pdf")

	case "docx":
		buf, err := RenderDOCX(doc)
		if err != nil {
			telemetry.Error("docgen.docx.failed", map[string]any{"err": err.Error(), "kind": doc.Kind.String()})
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to generate DOCX", nil)
			return
		}
		metrics.IncDocumentExported()
		c.Header("Content-Disposition", `attachment; filename="`+safeBaseName(req.FileName)+`.docx"`)
		c.Data(http.StatusOK, docxMIME, buf)

	default:
		respond.Error(c, http.StatusBadRequest, "validation_error", "Unsupported format", nil)
	}
}
