package utils

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"baliance.com/gooxml/document"

	"github.com/mugeshkumards/resume-entity-extractor/models"
)

// BuildCSV flattens an extraction result to a header row plus a single data
// row. List fields are joined so the whole result fits one row.
func BuildCSV(result *models.ExtractionResult) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{
		{"Name", "Email", "Phone", "Links", "Skills", "Experience", "Education"},
		{
			result.Name,
			result.Email,
			result.Phone,
			strings.Join(result.Links, " "),
			strings.Join(result.Skills, ", "),
			result.TotalExperience,
			result.HighestEducation,
		},
	}
	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("failed to write CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// BuildTextReport renders a plain-text analysis report.
func BuildTextReport(result *models.ExtractionResult) string {
	var sb strings.Builder

	sb.WriteString("RESUME ANALYSIS REPORT\n")
	sb.WriteString(strings.Repeat("=", 50) + "\n\n")

	sb.WriteString("PERSONAL INFORMATION\n")
	sb.WriteString("Name: " + result.Name + "\n")
	sb.WriteString("Email: " + result.Email + "\n")
	sb.WriteString("Phone: " + result.Phone + "\n\n")

	sb.WriteString(fmt.Sprintf("SKILLS (%d)\n", len(result.Skills)))
	for _, skill := range result.Skills {
		sb.WriteString("- " + skill + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString("EXPERIENCE\n")
	sb.WriteString("Total Experience: " + result.TotalExperience + "\n")
	for _, exp := range result.Experience {
		sb.WriteString(fmt.Sprintf("- %s | %s | %s\n", exp.Title, exp.Company, exp.Duration))
	}
	sb.WriteString("\n")

	sb.WriteString("EDUCATION\n")
	sb.WriteString(result.HighestEducation + "\n")
	for _, edu := range result.Education {
		sb.WriteString(fmt.Sprintf("- %s | %s | %s\n", edu.Degree, edu.Institution, edu.Year))
	}

	return sb.String()
}

// BuildWordReport renders the analysis report as a DOCX document.
func BuildWordReport(result *models.ExtractionResult) ([]byte, error) {
	doc := document.New()

	addHeading := func(text string) {
		run := doc.AddParagraph().AddRun()
		run.Properties().SetBold(true)
		run.AddText(text)
	}
	addLine := func(text string) {
		doc.AddParagraph().AddRun().AddText(text)
	}

	addHeading("Resume Analysis Report")
	addLine("")

	addHeading("Personal Information")
	addLine("Name: " + result.Name)
	addLine("Email: " + result.Email)
	addLine("Phone: " + result.Phone)
	addLine("")

	addHeading(fmt.Sprintf("Skills (%d)", len(result.Skills)))
	addLine(strings.Join(result.Skills, ", "))
	addLine("")

	addHeading("Experience")
	addLine("Total Experience: " + result.TotalExperience)
	for _, exp := range result.Experience {
		addLine(fmt.Sprintf("%s | %s | %s", exp.Title, exp.Company, exp.Duration))
	}
	addLine("")

	addHeading("Education")
	addLine("Highest Education: " + result.HighestEducation)
	for _, edu := range result.Education {
		addLine(fmt.Sprintf("%s | %s | %s", edu.Degree, edu.Institution, edu.Year))
	}

	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		return nil, fmt.Errorf("failed to save DOCX report: %w", err)
	}
	return buf.Bytes(), nil
}
