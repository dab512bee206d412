package uploads

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const slotName = "res"

// Extensions recognized for the uploaded resume, in preference order.
var recognizedExts = []string{".pdf", ".docx", ".doc", ".txt"}

// SlotStore holds the single "current" uploaded resume under a canonical
// res.<ext> slot inside a fixed directory. The original system kept stale
// files of other extensions around after an upload, which made Current
// dependent on directory enumeration order; Put removes the other-extension
// variants so exactly one res.* file can exist.
type SlotStore struct {
	dir string
}

// NewSlotStore constructs a SlotStore rooted at dir.
func NewSlotStore(dir string) *SlotStore {
	return &SlotStore{dir: dir}
}

// Dir returns the directory holding the uploaded resume.
func (s *SlotStore) Dir() string {
	return s.dir
}

// Put writes the reader to the canonical slot for the given extension,
// replacing any previous upload regardless of extension.
func (s *SlotStore) Put(ext string, r io.Reader) (string, error) {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	if !recognized(ext) {
		return "", fmt.Errorf("%w: unsupported extension %q", ErrInvalidInput, ext)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", s.dir, err)
	}

	for _, other := range recognizedExts {
		if other == ext {
			continue
		}
		_ = os.Remove(filepath.Join(s.dir, slotName+other))
	}

	fileName := slotName + ext
	fullPath := filepath.Join(s.dir, fileName)
	f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", fullPath, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("write %s: %w", fullPath, err)
	}
	return fileName, nil
}

// Current returns the path of the uploaded resume, if one exists.
func (s *SlotStore) Current() (string, bool) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return "", false
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, slotName) && recognized(strings.ToLower(filepath.Ext(name))) {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "", false
	}
	sort.Strings(names)
	return filepath.Join(s.dir, names[0]), true
}

func recognized(ext string) bool {
	for _, e := range recognizedExts {
		if e == ext {
			return true
		}
	}
	return false
}
