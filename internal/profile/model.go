package profile

// UserProfile is the singleton profile record, one per deployment.
type UserProfile struct {
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Phone           string           `json:"phone"`
	LinkedIn        string           `json:"linkedin"`
	Education       []EducationEntry `json:"education"`
	WorkExperiences []WorkExperience `json:"workExperiences"`
	Skills          []string         `json:"skills"`
	Resumes         []GeneratedDoc   `json:"resumes"`
	CoverLetters    []GeneratedDoc   `json:"coverLetters"`
}

// EducationEntry is one education record, identified by a stable ID.
type EducationEntry struct {
	ID          string `json:"id"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Institution string `json:"institution"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// WorkExperience is one job entry. Insertion order is significant: the
// first entries are treated as most recent by the prompt builders.
type WorkExperience struct {
	Position    string   `json:"position"`
	Company     string   `json:"company"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Bullets     []string `json:"bullets"`
	Description string   `json:"description"`
}

// GeneratedDoc is an immutable generated resume or cover letter.
type GeneratedDoc struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

// Default returns the profile used when no file exists or the stored
// record cannot be parsed.
func Default() UserProfile {
	return UserProfile{
		Name:            "John Doe",
		Email:           "john@example.com",
		Phone:           "(123) 456-7890",
		LinkedIn:        "linkedin.com/in/johndoe",
		Education:       []EducationEntry{},
		WorkExperiences: []WorkExperience{},
		Skills:          []string{"JavaScript", "React", "Python"},
		Resumes:         []GeneratedDoc{},
		CoverLetters:    []GeneratedDoc{},
	}
}

// LatestResume returns the most recently appended resume, if any.
func (p UserProfile) LatestResume() (GeneratedDoc, bool) {
	if len(p.Resumes) == 0 {
		return GeneratedDoc{}, false
	}
	return p.Resumes[len(p.Resumes)-1], true
}

// LatestCoverLetter returns the most recently appended cover letter, if any.
func (p UserProfile) LatestCoverLetter() (GeneratedDoc, bool) {
	if len(p.CoverLetters) == 0 {
		return GeneratedDoc{}, false
	}
	return p.CoverLetters[len(p.CoverLetters)-1], true
}
