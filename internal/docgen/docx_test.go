package docgen

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"
)

func docxPart(t *testing.T, data []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open zip: %v", err)
	}
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", name, err)
		}
		defer rc.Close()
		raw, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		return string(raw)
	}
	t.Fatalf("part %s not found", name)
	return ""
}

func TestRenderDOCXContainsAllParts(t *testing.T) {
	data, err := RenderDOCX(BuildResume(sampleProfile(), "content", nil))
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open zip: %v", err)
	}
	want := map[string]bool{
		"[Content_Types].xml":          false,
		"_rels/.rels":                  false,
		"word/_rels/document.xml.rels": false,
		"word/document.xml":            false,
		"word/styles.xml":              false,
		"word/numbering.xml":           false,
	}
	for _, f := range zr.File {
		if _, ok := want[f.Name]; ok {
			want[f.Name] = true
		}
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("missing part %s", name)
		}
	}
}

func TestRenderDOCXResumeDocument(t *testing.T) {
	doc := BuildResume(sampleProfile(),
		"Senior Engineer | Acme | 2020 – Present\n• Led the team", nil)

	data, err := RenderDOCX(doc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	body := docxPart(t, data, "word/document.xml")

	if !strings.Contains(body, `<w:pStyle w:val="Title"/>`) {
		t.Fatal("missing title paragraph")
	}
	if !strings.Contains(body, ">Jane Candidate</w:t>") {
		t.Fatal("missing name text")
	}
	if !strings.Contains(body, `<w:pStyle w:val="Heading1"/>`) {
		t.Fatal("missing heading style")
	}
	if !strings.Contains(body, ">Experience</w:t>") {
		t.Fatal("missing Experience heading")
	}
	if !strings.Contains(body, `<w:pStyle w:val="ListBullet"/>`) {
		t.Fatal("missing bullet style")
	}
}

func TestRenderDOCXEscapesReservedCharacters(t *testing.T) {
	p := sampleProfile()
	p.Name = `R&D <Lead> "Jane"`

	data, err := RenderDOCX(BuildResume(p, "content", nil))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	body := docxPart(t, data, "word/document.xml")

	if !strings.Contains(body, "R&amp;D &lt;Lead&gt; &quot;Jane&quot;") {
		t.Fatalf("name not escaped:\n%s", body)
	}
	if strings.Contains(body, "<Lead>") {
		t.Fatal("raw angle brackets leaked into XML")
	}
}

func TestRenderDOCXCoverLetterStyles(t *testing.T) {
	doc := BuildCoverLetter("Dear Hiring Manager,\nI am excited to apply.")

	data, err := RenderDOCX(doc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	styles := docxPart(t, data, "word/styles.xml")
	if !strings.Contains(styles, `w:ascii="Times New Roman"`) {
		t.Fatal("cover letter missing serif face")
	}
	if !strings.Contains(styles, `<w:sz w:val="24"/>`) {
		t.Fatal("cover letter missing 12pt default size")
	}

	body := docxPart(t, data, "word/document.xml")
	if strings.Contains(body, `<w:pStyle w:val="Title"/>`) {
		t.Fatal("cover letter should not carry a title header")
	}
	if !strings.Contains(body, ">Dear Hiring Manager,</w:t>") {
		t.Fatal("missing salutation paragraph")
	}
}

func TestRenderDOCXResumeDefaultFace(t *testing.T) {
	data, err := RenderDOCX(BuildResume(sampleProfile(), "content", nil))
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	styles := docxPart(t, data, "word/styles.xml")
	if !strings.Contains(styles, `w:ascii="Calibri"`) {
		t.Fatal("resume missing default face")
	}
	if !strings.Contains(styles, `<w:sz w:val="22"/>`) {
		t.Fatal("resume missing 11pt default size")
	}
}
