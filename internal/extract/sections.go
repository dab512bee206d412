package extract

import (
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nguyenthenguyen/docx"

	"resumecraft-backend/internal/shared/telemetry"
)

// Sections holds supplementary resume sections keyed by header, preserving
// the order in which headers were first seen.
type Sections struct {
	order []string
	items map[string][]string
}

// NewSections constructs an empty Sections.
func NewSections() *Sections {
	return &Sections{items: map[string][]string{}}
}

// Set stores lines under the header. A repeated header overwrites the
// earlier lines but keeps its original position.
func (s *Sections) Set(header string, lines []string) {
	if _, ok := s.items[header]; !ok {
		s.order = append(s.order, header)
	}
	s.items[header] = lines
}

// Get returns the lines stored under the header.
func (s *Sections) Get(header string) []string {
	return s.items[header]
}

// Remove deletes and returns the lines stored under the header.
func (s *Sections) Remove(header string) []string {
	lines, ok := s.items[header]
	if !ok {
		return nil
	}
	delete(s.items, header)
	for i, name := range s.order {
		if name == header {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return lines
}

// Names returns the remaining headers in first-seen order.
func (s *Sections) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of stored sections.
func (s *Sections) Len() int {
	return len(s.items)
}

// AdditionalSections scans resumeDir for the first uploaded res*.docx file
// and returns its tabular sections: for every table row with at least two
// cells, cell 0 (trimmed, trailing colon stripped) names the section and
// cell 1 supplies its lines, split on newlines.
//
// A missing file, a document without tables, or a malformed document all
// yield an empty (or partial) result, never an error to the caller.
func AdditionalSections(resumeDir string) *Sections {
	sections := NewSections()

	path, ok := findDocx(resumeDir)
	if !ok {
		return sections
	}

	reader, err := docx.ReadDocxFile(path)
	if err != nil {
		telemetry.Error("extract.sections.open_failed", map[string]any{"path": path, "err": err.Error()})
		return sections
	}
	defer reader.Close()

	for _, row := range tableRows(reader.Editable().GetContent()) {
		if len(row) < 2 {
			continue
		}
		header := strings.TrimSuffix(strings.TrimSpace(row[0]), ":")
		data := strings.TrimSpace(row[1])
		if header == "" || data == "" {
			continue
		}
		sections.Set(header, strings.Split(data, "\n"))
	}
	return sections
}

func findDocx(dir string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, "res") && strings.EqualFold(filepath.Ext(name), ".docx") {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "", false
	}
	sort.Strings(names)
	return filepath.Join(dir, names[0]), true
}

// tableRows walks the document XML and collects the text of every table
// cell, row by row. Paragraph ends inside a cell become newlines.
func tableRows(content string) [][]string {
	decoder := xml.NewDecoder(strings.NewReader(content))

	var rows [][]string
	var row []string
	var cell strings.Builder
	depthTbl, depthTc := 0, 0
	inRow := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed document: return what was collected so far.
			return rows
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				depthTbl++
			case "tr":
				if depthTbl > 0 {
					inRow = true
					row = nil
				}
			case "tc":
				if inRow {
					depthTc++
					cell.Reset()
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "tbl":
				if depthTbl > 0 {
					depthTbl--
				}
			case "tr":
				if inRow {
					rows = append(rows, row)
					inRow = false
				}
			case "tc":
				if depthTc > 0 {
					depthTc--
					row = append(row, strings.TrimRight(cell.String(), "\n"))
				}
			case "p", "br":
				if depthTc > 0 && cell.Len() > 0 {
					cell.WriteString("\n")
				}
			}
		case xml.CharData:
			if depthTc > 0 {
				cell.Write(t)
			}
		}
	}
	return rows
}
