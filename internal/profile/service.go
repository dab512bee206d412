package profile

import (
	"encoding/json"
	"fmt"
)

// Service contains business logic for the user profile.
type Service struct {
	Store Store
}

// NewService constructs a Service.
func NewService(store Store) *Service {
	return &Service{Store: store}
}

// Get returns the current profile.
func (s *Service) Get() UserProfile {
	return s.Store.Load()
}

// UpdateProfile merges the supplied top-level fields into the profile.
// Only known keys are applied; unknown keys are ignored.
func (s *Service) UpdateProfile(patch map[string]json.RawMessage) (UserProfile, error) {
	p := s.Store.Load()

	for key, raw := range patch {
		var err error
		switch key {
		case "name":
			err = json.Unmarshal(raw, &p.Name)
		case "email":
			err = json.Unmarshal(raw, &p.Email)
		case "phone":
			err = json.Unmarshal(raw, &p.Phone)
		case "linkedin":
			err = json.Unmarshal(raw, &p.LinkedIn)
		case "education":
			err = json.Unmarshal(raw, &p.Education)
		case "workExperiences":
			err = json.Unmarshal(raw, &p.WorkExperiences)
		case "skills":
			err = json.Unmarshal(raw, &p.Skills)
		case "resumes":
			err = json.Unmarshal(raw, &p.Resumes)
		case "coverLetters":
			err = json.Unmarshal(raw, &p.CoverLetters)
		}
		if err != nil {
			return UserProfile{}, fmt.Errorf("%w: field %q: %v", ErrInvalidInput, key, err)
		}
	}

	if !s.Store.Save(p) {
		return UserProfile{}, ErrSaveFailed
	}
	return p, nil
}

// UpdateEducation merges the supplied fields into the education entry with
// the given ID. Fields absent from the patch are retained.
func (s *Service) UpdateEducation(id string, patch map[string]json.RawMessage) (EducationEntry, error) {
	p := s.Store.Load()

	idx := -1
	for i, edu := range p.Education {
		if edu.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return EducationEntry{}, ErrNotFound
	}

	merged, err := mergeEducation(p.Education[idx], patch)
	if err != nil {
		return EducationEntry{}, err
	}
	merged.ID = id
	p.Education[idx] = merged

	if !s.Store.Save(p) {
		return EducationEntry{}, ErrSaveFailed
	}
	return merged, nil
}

// AppendResume appends a generated resume and persists the profile.
func (s *Service) AppendResume(doc GeneratedDoc) bool {
	p := s.Store.Load()
	p.Resumes = append(p.Resumes, doc)
	return s.Store.Save(p)
}

// AppendCoverLetter appends a generated cover letter and persists the profile.
func (s *Service) AppendCoverLetter(doc GeneratedDoc) bool {
	p := s.Store.Load()
	p.CoverLetters = append(p.CoverLetters, doc)
	return s.Store.Save(p)
}

func mergeEducation(entry EducationEntry, patch map[string]json.RawMessage) (EducationEntry, error) {
	base, err := json.Marshal(entry)
	if err != nil {
		return EducationEntry{}, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(base, &fields); err != nil {
		return EducationEntry{}, err
	}
	for k, v := range patch {
		fields[k] = v
	}
	mergedRaw, err := json.Marshal(fields)
	if err != nil {
		return EducationEntry{}, err
	}
	var merged EducationEntry
	if err := json.Unmarshal(mergedRaw, &merged); err != nil {
		return EducationEntry{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return merged, nil
}
