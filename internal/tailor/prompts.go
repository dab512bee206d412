package tailor

import (
	"fmt"
	"strings"

	"resumecraft-backend/internal/profile"
)

const (
	experienceSystemPrompt = "You are an expert resume writer skilled in ATS optimization."
	coverSystemPrompt      = "You are a skilled business communicator who writes concise, effective cover letters."
	chatSystemPrompt       = "Your name is ResumeCraft AI Agent, and you are a helpful assistant who improves job application documents."
)

// buildExperiencePrompt asks the model to rewrite only the work-experience
// section, preserving the entry count, order and line format.
func buildExperiencePrompt(experiences []profile.WorkExperience, jobDescription string) string {
	var b strings.Builder

	b.WriteString("You are a professional resume writer helping tailor resumes for a specific job description. ")
	b.WriteString("Keep it recruiter-friendly and ATS-compliant. Use strong action verbs, quantified achievements, ")
	b.WriteString("and align each bullet point with the provided job description.\n\n")
	b.WriteString("The goal is to rewrite only the WORK EXPERIENCE section from the candidate's resume. ")
	b.WriteString("Your output will be injected into an existing resume layout, so do NOT include any summary, ")
	b.WriteString("contact info, education, or skills - just the updated WORK EXPERIENCE section in clean resume bullet format.\n\n")

	b.WriteString("Candidate's Original Work Experience:\n")
	for i, exp := range experiences {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "%s | %s | %s – %s", exp.Position, exp.Company, exp.StartDate, exp.EndDate)
		for _, bullet := range exp.Bullets {
			b.WriteString("\n• ")
			b.WriteString(bullet)
		}
	}

	b.WriteString("\n\nTarget Job Description:\n")
	b.WriteString(jobDescription)

	b.WriteString("\n\nInstructions:\n")
	b.WriteString("- Align the content with the focus areas of the job description.\n")
	b.WriteString("- Preserve formatting: return output using the same format as above (Job title | Company | Dates + 3-5 bullet points each).\n")
	b.WriteString("- Do not add or remove job roles - just rewrite the bullet points to better match the job.\n")
	b.WriteString("- Keep a concise, executive MBA-style tone.\n")

	return b.String()
}

// buildCoverLetterPrompt asks for a tailored cover letter built from the
// skill list and the two most recent experience highlights.
func buildCoverLetterPrompt(p profile.UserProfile, jobTitle, jobDescription string) string {
	var b strings.Builder

	b.WriteString("Write a concise, personalized cover letter for the following job title and description.\n\n")
	fmt.Fprintf(&b, "Job Title: %s\n", jobTitle)
	fmt.Fprintf(&b, "Job Description:\n%s\n\n", jobDescription)

	b.WriteString("Candidate Background:\n")
	fmt.Fprintf(&b, "Skills: %s\n", strings.Join(p.Skills, ", "))
	b.WriteString("Recent Experience Highlights:\n")
	for i, exp := range p.WorkExperiences {
		if i >= 2 {
			break
		}
		firstBullet := ""
		if len(exp.Bullets) > 0 {
			firstBullet = exp.Bullets[0]
		}
		fmt.Fprintf(&b, "%s at %s – Key Impact: %s\n", exp.Position, exp.Company, firstBullet)
	}

	b.WriteString("\nMake it sound confident, polished, and tailored to the role.\n")

	return b.String()
}
