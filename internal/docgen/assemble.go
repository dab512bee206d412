package docgen

import (
	"fmt"
	"strings"

	"resumecraft-backend/internal/extract"
	"resumecraft-backend/internal/profile"
)

const experienceFallback = "Experience details not available."

// BuildResume assembles the resume layout: contact header, then Education,
// Experience, Skills and - when extracted content exists - Additional
// Information, in that fixed order.
func BuildResume(p profile.UserProfile, content string, extras *extract.Sections) Document {
	if extras == nil {
		extras = extract.NewSections()
	}

	doc := Document{
		Kind: KindResume,
		Header: Header{
			Name:    p.Name,
			Contact: fmt.Sprintf("%s | %s | %s", p.Email, p.Phone, p.LinkedIn),
		},
	}

	doc.Sections = append(doc.Sections, educationSection(p.Education))
	doc.Sections = append(doc.Sections, experienceSection(content))

	extraSkills := extras.Remove("Skills")
	doc.Sections = append(doc.Sections, skillsSection(p.Skills, extraSkills))

	if extras.Len() > 0 {
		doc.Sections = append(doc.Sections, additionalSection(extras))
	}

	return doc
}

// BuildCoverLetter assembles the cover-letter layout: no contact header,
// every non-empty content line its own paragraph, blank lines skipped.
func BuildCoverLetter(content string) Document {
	var blocks []Block
	for _, line := range strings.Split(strings.TrimSpace(content), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			blocks = append(blocks, Block{Text: trimmed, Style: StyleParagraph})
		}
	}
	return Document{
		Kind:     KindCoverLetter,
		Sections: []Section{{Blocks: blocks}},
	}
}

func educationSection(entries []profile.EducationEntry) Section {
	section := Section{Heading: "Education"}
	for _, edu := range entries {
		summary := fmt.Sprintf("%s in %s - %s (%s to %s)",
			edu.Degree, edu.Field, edu.Institution, edu.StartDate, edu.EndDate)
		section.Blocks = append(section.Blocks, Block{Text: summary, Style: StyleParagraph})
		for _, line := range strings.Split(edu.Description, "\n") {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				section.Blocks = append(section.Blocks, Block{Text: trimmed, Style: StyleBullet})
			}
		}
	}
	return section
}

// experienceSection splits the generated experience text into blocks on
// blank lines: each block's first line is the role/company/dates paragraph
// and the remaining non-empty lines are bullets.
func experienceSection(content string) Section {
	section := Section{Heading: "Experience"}

	if strings.TrimSpace(content) == "" {
		content = experienceFallback
	}
	for _, blockText := range strings.Split(content, "\n\n") {
		lines := strings.Split(strings.TrimSpace(blockText), "\n")
		if len(lines) == 0 || lines[0] == "" {
			continue
		}
		section.Blocks = append(section.Blocks, Block{Text: lines[0], Style: StyleParagraph})
		for _, bullet := range lines[1:] {
			if trimmed := strings.TrimSpace(bullet); trimmed != "" {
				section.Blocks = append(section.Blocks, Block{Text: trimmed, Style: StyleBullet})
			}
		}
	}
	return section
}

func skillsSection(skills, extraSkills []string) Section {
	all := make([]string, 0, len(skills)+len(extraSkills))
	all = append(all, skills...)
	all = append(all, extraSkills...)
	return Section{
		Heading: "Skills",
		Blocks:  []Block{{Text: strings.Join(all, ", "), Style: StyleParagraph}},
	}
}

func additionalSection(extras *extract.Sections) Section {
	section := Section{Heading: "Additional Information"}
	for _, name := range extras.Names() {
		section.Blocks = append(section.Blocks, Block{Text: name, Style: StyleLabel})
		for _, item := range extras.Get(name) {
			if trimmed := strings.TrimSpace(item); trimmed != "" {
				section.Blocks = append(section.Blocks, Block{Text: "- " + trimmed, Style: StyleBullet})
			}
		}
	}
	return section
}
