package tailor

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"resumecraft-backend/internal/extract"
	"resumecraft-backend/internal/llm"
	"resumecraft-backend/internal/profile"
	"resumecraft-backend/internal/shared/metrics"
	"resumecraft-backend/internal/shared/telemetry"
	"resumecraft-backend/internal/uploads"
)

const headerLineCount = 6

// Service runs the tailoring pipeline: build prompts from the profile and
// job description, call the completion service, post-process the reply and
// persist the generated documents.
type Service struct {
	Profiles *profile.Service
	Slot     *uploads.SlotStore
	LLM      llm.Client

	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

// NewService constructs a Service.
func NewService(profiles *profile.Service, slot *uploads.SlotStore, client llm.Client) *Service {
	return &Service{Profiles: profiles, Slot: slot, LLM: client, Now: time.Now}
}

// GenerateResult carries both generated texts.
type GenerateResult struct {
	Resume      string `json:"resume"`
	CoverLetter string `json:"coverLetter"`
}

// Generate tailors the work-experience section and drafts a cover letter
// for the job, appending both to the profile's generated-document logs.
func (s *Service) Generate(ctx context.Context, jobTitle, jobDescription string) (GenerateResult, error) {
	if _, ok := s.Slot.Current(); !ok {
		return GenerateResult{}, ErrNoResume
	}

	metrics.IncGenerationStarted()
	started := time.Now()

	p := s.Profiles.Get()

	experience, err := s.RewriteExperience(ctx, p, jobDescription)
	if err != nil {
		metrics.IncGenerationFailed()
		return GenerateResult{}, err
	}

	coverLetter, err := s.DraftCoverLetter(ctx, p, jobTitle, jobDescription)
	if err != nil {
		metrics.IncGenerationFailed()
		return GenerateResult{}, err
	}

	now := s.Now().UTC().Format(time.RFC3339)
	resumeOK := s.Profiles.AppendResume(profile.GeneratedDoc{
		ID:        uuid.NewString(),
		Title:     "Updated Resume for " + jobTitle,
		Content:   experience,
		CreatedAt: now,
	})
	coverOK := s.Profiles.AppendCoverLetter(profile.GeneratedDoc{
		ID:        uuid.NewString(),
		Title:     "Cover Letter for " + jobTitle,
		Content:   coverLetter,
		CreatedAt: now,
	})
	if !resumeOK || !coverOK {
		metrics.IncGenerationFailed()
		return GenerateResult{}, ErrSaveFailed
	}

	metrics.IncGenerationCompleted()
	metrics.ObserveGenerationDurationMs(float64(time.Since(started).Milliseconds()))
	return GenerateResult{Resume: experience, CoverLetter: coverLetter}, nil
}

// RewriteExperience returns the model's rewrite of the work-experience
// section. The reply is trimmed but otherwise treated as opaque text.
func (s *Service) RewriteExperience(ctx context.Context, p profile.UserProfile, jobDescription string) (string, error) {
	reply, err := s.LLM.Complete(ctx, []llm.Message{
		{Role: "system", Content: experienceSystemPrompt},
		{Role: "user", Content: buildExperiencePrompt(p.WorkExperiences, jobDescription)},
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(reply), nil
}

// DraftCoverLetter returns a cover letter with the model's header block
// replaced by locally generated contact lines.
func (s *Service) DraftCoverLetter(ctx context.Context, p profile.UserProfile, jobTitle, jobDescription string) (string, error) {
	reply, err := s.LLM.Complete(ctx, []llm.Message{
		{Role: "system", Content: coverSystemPrompt},
		{Role: "user", Content: buildCoverLetterPrompt(p, jobTitle, jobDescription)},
	})
	if err != nil {
		return "", err
	}
	return s.spliceHeader(p, strings.TrimSpace(reply)), nil
}

// spliceHeader replaces the first six lines of the model reply with a
// generated header block. Replies shorter than six lines keep all their
// content and get the header prepended, which can duplicate salutation
// text; that quirk is preserved deliberately. The six-line assumption is
// fragile and documented as such.
func (s *Service) spliceHeader(p profile.UserProfile, reply string) string {
	header := strings.Join([]string{
		p.Name,
		"[Your Address]",
		"[City, State, Zip]",
		p.Email,
		p.Phone,
		s.Now().Format("January 2, 2006"),
	}, "\n")

	lines := strings.Split(reply, "\n")
	body := lines
	if len(body) >= headerLineCount {
		body = body[headerLineCount:]
	}

	text := strings.TrimSpace(header + "\n" + strings.Join(body, "\n"))
	return strings.ReplaceAll(text, "[Your Name]", p.Name)
}

// ChatRespond forwards a conversation to the completion service under the
// assistant persona. When an uploaded resume is readable its text is added
// to the system message so replies can reference the candidate's background.
func (s *Service) ChatRespond(ctx context.Context, messages []llm.Message) (string, error) {
	if len(messages) == 0 {
		return "", ErrNoMessages
	}

	system := chatSystemPrompt
	if path, ok := s.Slot.Current(); ok {
		if text, err := extract.Text(path); err == nil && text != "" {
			system += "\n\nThe candidate's current resume:\n" + text
		} else if err != nil {
			telemetry.Error("tailor.chat.resume_context_failed", map[string]any{"err": err.Error()})
		}
	}

	reply, err := s.LLM.Complete(ctx, append([]llm.Message{{Role: "system", Content: system}}, messages...))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(reply), nil
}
