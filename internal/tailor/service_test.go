package tailor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"resumecraft-backend/internal/llm"
	"resumecraft-backend/internal/profile"
	"resumecraft-backend/internal/uploads"
)

// fakeClient returns a canned reply and records the messages it was given.
type fakeClient struct {
	reply string
	err   error
	calls [][]llm.Message
}

func (f *fakeClient) Complete(_ context.Context, messages []llm.Message) (string, error) {
	f.calls = append(f.calls, messages)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func fixedNow() time.Time {
	return time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)
}

func newTestService(t *testing.T, client llm.Client) (*Service, *profile.MemoryStore, *uploads.SlotStore) {
	t.Helper()

	store := profile.NewMemoryStore()
	slot := uploads.NewSlotStore(t.TempDir())
	svc := NewService(profile.NewService(store), slot, client)
	svc.Now = fixedNow
	return svc, store, slot
}

func uploadResume(t *testing.T, slot *uploads.SlotStore, content string) {
	t.Helper()
	if _, err := slot.Put(".txt", strings.NewReader(content)); err != nil {
		t.Fatalf("seed resume: %v", err)
	}
}

func profileWithExperience() profile.UserProfile {
	p := profile.Default()
	p.Name = "Jane Candidate"
	p.Email = "jane@example.com"
	p.Phone = "555-0100"
	p.Skills = []string{"Go", "Kubernetes"}
	p.WorkExperiences = []profile.WorkExperience{
		{
			Position:  "Senior Engineer",
			Company:   "Acme",
			StartDate: "2020",
			EndDate:   "Present",
			Bullets:   []string{"Cut deploy time by 80%", "Led a team of five"},
		},
		{
			Position:  "Engineer",
			Company:   "Initech",
			StartDate: "2017",
			EndDate:   "2020",
			Bullets:   []string{"Built the billing service"},
		},
		{
			Position: "Intern",
			Company:  "Globex",
		},
	}
	return p
}

func TestGenerateWithoutUploadedResume(t *testing.T) {
	svc, _, _ := newTestService(t, &fakeClient{reply: "x"})

	_, err := svc.Generate(context.Background(), "SRE", "keep things up")
	if !errors.Is(err, ErrNoResume) {
		t.Fatalf("expected ErrNoResume, got %v", err)
	}
}

func TestGenerateAppendsBothDocuments(t *testing.T) {
	client := &fakeClient{reply: "Senior Engineer | Acme | 2020 – Present\n• Did things"}
	svc, store, slot := newTestService(t, client)
	store.Save(profileWithExperience())
	uploadResume(t, slot, "resume text")

	result, err := svc.Generate(context.Background(), "Platform Engineer", "build platforms")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if result.Resume == "" || result.CoverLetter == "" {
		t.Fatalf("result = %+v", result)
	}
	if len(client.calls) != 2 {
		t.Fatalf("completion calls = %d", len(client.calls))
	}

	p := store.Load()
	resume, ok := p.LatestResume()
	if !ok || resume.Title != "Updated Resume for Platform Engineer" {
		t.Fatalf("resume doc = %+v ok=%v", resume, ok)
	}
	letter, ok := p.LatestCoverLetter()
	if !ok || letter.Title != "Cover Letter for Platform Engineer" {
		t.Fatalf("cover letter doc = %+v ok=%v", letter, ok)
	}
	if resume.CreatedAt != letter.CreatedAt {
		t.Fatalf("timestamps differ: %q vs %q", resume.CreatedAt, letter.CreatedAt)
	}
	if resume.ID == letter.ID || resume.ID == "" {
		t.Fatalf("ids: %q vs %q", resume.ID, letter.ID)
	}
}

func TestGeneratePropagatesCompletionError(t *testing.T) {
	svc, store, slot := newTestService(t, &fakeClient{err: errors.New("model offline")})
	store.Save(profileWithExperience())
	uploadResume(t, slot, "resume text")

	_, err := svc.Generate(context.Background(), "SRE", "jd")
	if err == nil || !strings.Contains(err.Error(), "model offline") {
		t.Fatalf("err = %v", err)
	}

	p := store.Load()
	if len(p.Resumes) != 0 || len(p.CoverLetters) != 0 {
		t.Fatal("documents appended despite completion failure")
	}
}

func TestRewriteExperiencePromptShape(t *testing.T) {
	client := &fakeClient{reply: "rewritten"}
	svc, _, _ := newTestService(t, client)

	_, err := svc.RewriteExperience(context.Background(), profileWithExperience(), "run the platform")
	if err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	messages := client.calls[0]
	if len(messages) != 2 || messages[0].Role != "system" || messages[1].Role != "user" {
		t.Fatalf("messages = %+v", messages)
	}
	prompt := messages[1].Content
	if !strings.Contains(prompt, "Senior Engineer | Acme | 2020 – Present") {
		t.Fatalf("missing experience line in prompt:\n%s", prompt)
	}
	if !strings.Contains(prompt, "• Cut deploy time by 80%") {
		t.Fatalf("missing bullet in prompt:\n%s", prompt)
	}
	if !strings.Contains(prompt, "run the platform") {
		t.Fatalf("missing job description in prompt:\n%s", prompt)
	}
}

func TestCoverLetterPromptLimitsHighlights(t *testing.T) {
	client := &fakeClient{reply: strings.Repeat("line\n", 7)}
	svc, _, _ := newTestService(t, client)

	_, err := svc.DraftCoverLetter(context.Background(), profileWithExperience(), "SRE", "jd")
	if err != nil {
		t.Fatalf("draft: %v", err)
	}

	prompt := client.calls[0][1].Content
	if !strings.Contains(prompt, "Skills: Go, Kubernetes") {
		t.Fatalf("missing skills line:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Senior Engineer at Acme – Key Impact: Cut deploy time by 80%") {
		t.Fatalf("missing first highlight:\n%s", prompt)
	}
	if strings.Contains(prompt, "Globex") {
		t.Fatalf("third experience leaked into highlights:\n%s", prompt)
	}
}

func TestDraftCoverLetterReplacesHeaderBlock(t *testing.T) {
	reply := strings.Join([]string{
		"Model Name",
		"123 Model Street",
		"Modeltown, MT 00000",
		"model@example.com",
		"555-9999",
		"January 1, 1999",
		"Dear Hiring Manager,",
		"I am excited to apply. Sincerely, [Your Name]",
	}, "\n")
	svc, store, _ := newTestService(t, &fakeClient{reply: reply})
	store.Save(profileWithExperience())

	got, err := svc.DraftCoverLetter(context.Background(), store.Load(), "SRE", "jd")
	if err != nil {
		t.Fatalf("draft: %v", err)
	}

	lines := strings.Split(got, "\n")
	wantHeader := []string{
		"Jane Candidate",
		"[Your Address]",
		"[City, State, Zip]",
		"jane@example.com",
		"555-0100",
		"March 14, 2025",
	}
	for i, want := range wantHeader {
		if lines[i] != want {
			t.Fatalf("header line %d = %q, want %q", i, lines[i], want)
		}
	}
	if lines[6] != "Dear Hiring Manager," {
		t.Fatalf("body start = %q", lines[6])
	}
	if !strings.Contains(got, "Sincerely, Jane Candidate") {
		t.Fatalf("placeholder name not replaced:\n%s", got)
	}
	if strings.Contains(got, "Model Name") {
		t.Fatalf("model header survived:\n%s", got)
	}
}

func TestDraftCoverLetterShortReplyKeepsAllLines(t *testing.T) {
	svc, store, _ := newTestService(t, &fakeClient{reply: "Dear Team,\nShort letter."})
	store.Save(profileWithExperience())

	got, err := svc.DraftCoverLetter(context.Background(), store.Load(), "SRE", "jd")
	if err != nil {
		t.Fatalf("draft: %v", err)
	}
	// Replies under six lines are kept whole below the generated header.
	if !strings.Contains(got, "Dear Team,\nShort letter.") {
		t.Fatalf("short reply truncated:\n%s", got)
	}
	if !strings.HasPrefix(got, "Jane Candidate\n") {
		t.Fatalf("missing generated header:\n%s", got)
	}
}

func TestChatRespondRequiresMessages(t *testing.T) {
	svc, _, _ := newTestService(t, &fakeClient{reply: "x"})

	_, err := svc.ChatRespond(context.Background(), nil)
	if !errors.Is(err, ErrNoMessages) {
		t.Fatalf("expected ErrNoMessages, got %v", err)
	}
}

func TestChatRespondInjectsResumeContext(t *testing.T) {
	client := &fakeClient{reply: "  sure, here is a suggestion  "}
	svc, _, slot := newTestService(t, client)
	uploadResume(t, slot, "Jane Candidate\nSenior Engineer at Acme")

	got, err := svc.ChatRespond(context.Background(), []llm.Message{
		{Role: "user", Content: "improve my summary"},
	})
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if got != "sure, here is a suggestion" {
		t.Fatalf("reply = %q", got)
	}

	messages := client.calls[0]
	if len(messages) != 2 {
		t.Fatalf("messages = %+v", messages)
	}
	system := messages[0].Content
	if !strings.Contains(system, "ResumeCraft AI Agent") {
		t.Fatalf("system persona missing:\n%s", system)
	}
	if !strings.Contains(system, "Senior Engineer at Acme") {
		t.Fatalf("resume context missing:\n%s", system)
	}
}

func TestChatRespondWithoutResume(t *testing.T) {
	client := &fakeClient{reply: "ok"}
	svc, _, _ := newTestService(t, client)

	if _, err := svc.ChatRespond(context.Background(), []llm.Message{{Role: "user", Content: "hi"}}); err != nil {
		t.Fatalf("chat: %v", err)
	}
	if strings.Contains(client.calls[0][0].Content, "current resume") {
		t.Fatal("resume context injected with empty slot")
	}
}

func TestGenerateSaveFailure(t *testing.T) {
	client := &fakeClient{reply: "content"}
	svc, store, slot := newTestService(t, client)
	uploadResume(t, slot, "resume text")
	store.FailSaves = true

	_, err := svc.Generate(context.Background(), "SRE", "jd")
	if !errors.Is(err, ErrSaveFailed) {
		t.Fatalf("expected ErrSaveFailed, got %v", err)
	}
}
