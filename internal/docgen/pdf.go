package docgen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"resumecraft-backend/internal/shared/telemetry"
	"resumecraft-backend/internal/shared/util"
)

// Point sizes and margins mirror the original layout: A4 pages, half-inch
// margins for resumes and three-quarter-inch margins for cover letters.
const (
	resumeMarginPt = 36
	letterMarginPt = 54

	nameSizePt    = 18
	headingSizePt = 14
	bodySizePt    = 11
	letterSizePt  = 12

	bulletIndentPt = 10
)

// PDFRenderer writes assembled documents as paginated A4 PDFs.
//
// The preferred serif face is loaded from FontPath when that file exists;
// otherwise the renderer falls back to the built-in core Times face, which
// covers only Latin-1 text. The fallback keeps rendering working on hosts
// without the msttcorefonts package installed.
type PDFRenderer struct {
	// FontPath optionally points at a Times TTF file.
	FontPath string
	// OutDir receives generated PDF files.
	OutDir string
}

// RenderPDF renders the document and returns the path of the written file.
// On failure the partial output file is removed so later download requests
// cannot pick up a stale path.
func (r *PDFRenderer) RenderPDF(doc Document, fileName string) (string, error) {
	if err := os.MkdirAll(r.OutDir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", r.OutDir, err)
	}
	outPath := filepath.Join(r.OutDir, safeBaseName(fileName)+".pdf")

	pdf := fpdf.New("P", "pt", "A4", "")
	family := r.registerFont(pdf)

	margin := float64(resumeMarginPt)
	if doc.Kind == KindCoverLetter {
		margin = letterMarginPt
	}
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.AddPage()

	if doc.Kind == KindCoverLetter {
		r.renderLetter(pdf, family, doc)
	} else {
		r.renderResume(pdf, family, margin, doc)
	}

	if err := pdf.Error(); err != nil {
		return "", fmt.Errorf("render pdf: %w", err)
	}
	if err := pdf.OutputFileAndClose(outPath); err != nil {
		os.Remove(outPath)
		return "", fmt.Errorf("write pdf %s: %w", outPath, err)
	}
	return outPath, nil
}

func (r *PDFRenderer) renderResume(pdf *fpdf.Fpdf, family string, margin float64, doc Document) {
	pdf.SetFont(family, "", nameSizePt)
	pdf.CellFormat(0, nameSizePt+4, doc.Header.Name, "", 1, "C", false, 0, "")

	pdf.SetFont(family, "", bodySizePt)
	pdf.CellFormat(0, bodySizePt+3, doc.Header.Contact, "", 1, "L", false, 0, "")
	pdf.Ln(12)

	for _, section := range doc.Sections {
		pdf.Ln(8)
		pdf.SetFont(family, "", headingSizePt)
		pdf.SetTextColor(0x2c, 0x3e, 0x50)
		pdf.CellFormat(0, headingSizePt+4, section.Heading, "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)

		for _, block := range section.Blocks {
			switch block.Style {
			case StyleBullet:
				pdf.SetFont(family, "", bodySizePt)
				pdf.SetX(margin + bulletIndentPt)
				pdf.MultiCell(0, bodySizePt+3, block.Text, "", "L", false)
			case StyleLabel:
				pdf.SetFont(family, "B", bodySizePt)
				pdf.MultiCell(0, bodySizePt+3, block.Text, "", "L", false)
			default:
				pdf.SetFont(family, "", bodySizePt)
				pdf.MultiCell(0, bodySizePt+3, block.Text, "", "L", false)
			}
		}
	}
}

func (r *PDFRenderer) renderLetter(pdf *fpdf.Fpdf, family string, doc Document) {
	pdf.SetFont(family, "", letterSizePt)
	for _, section := range doc.Sections {
		for _, block := range section.Blocks {
			pdf.MultiCell(0, letterSizePt+4, block.Text, "", "L", false)
			pdf.Ln(6)
		}
	}
}

// registerFont loads the configured TTF if present and returns the family
// name to render with, falling back to the built-in core Times face.
// The font is loaded into a probe document first: a failed load would stick
// as a document-level error and abort the whole render.
func (r *PDFRenderer) registerFont(pdf *fpdf.Fpdf) string {
	if r.FontPath == "" {
		return "Times"
	}
	if _, err := os.Stat(r.FontPath); err != nil {
		return "Times"
	}

	probe := fpdf.New("P", "pt", "A4", "")
	probe.AddUTF8Font("TimesTTF", "", r.FontPath)
	probe.AddUTF8Font("TimesTTF", "B", r.FontPath)
	if probe.Err() {
		telemetry.Error("docgen.pdf.font_load_failed", map[string]any{
			"path": r.FontPath,
			"err":  probe.Error().Error(),
		})
		return "Times"
	}

	pdf.AddUTF8Font("TimesTTF", "", r.FontPath)
	pdf.AddUTF8Font("TimesTTF", "B", r.FontPath)
	return "TimesTTF"
}

func safeBaseName(fileName string) string {
	base := filepath.Base(fileName)
	if base == "." || base == string(filepath.Separator) {
		return "document"
	}
	name, err := util.SanitizeFileName(base)
	if err != nil {
		return "document"
	}
	return name
}
