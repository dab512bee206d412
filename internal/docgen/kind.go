package docgen

import "strings"

// Kind selects the layout profile used to render a document.
type Kind int

const (
	KindResume Kind = iota
	KindCoverLetter
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	if k == KindCoverLetter {
		return "cover-letter"
	}
	return "resume"
}

// Classify decides the layout for free-text content: anything whose trimmed,
// case-folded text starts with "dear" or mentions "dear hiring manager" is
// treated as a cover letter, everything else as a resume.
//
// This heuristic is a known fragility point: a resume summary that happens
// to begin with "Dear ..." would be misrouted. It is kept as a separate
// function so a caller-supplied kind can replace it without touching the
// renderers.
func Classify(content string) Kind {
	lowered := strings.ToLower(strings.TrimSpace(content))
	if strings.HasPrefix(lowered, "dear") || strings.Contains(lowered, "dear hiring manager") {
		return KindCoverLetter
	}
	return KindResume
}
