package extractor

import (
	"strings"

	"github.com/mugeshkumards/resume-entity-extractor/models"
	"github.com/mugeshkumards/resume-entity-extractor/patterns"
)

// ExtractEducation isolates the education section and walks its lines,
// accumulating one entry at a time. A line containing a degree keyword
// finalizes the open entry and starts a new one; a 4-digit year attaches to
// the open entry (last match wins); the first keyword-free line while the
// institution is still empty becomes the institution. Lines before the first
// degree keyword are dropped since no entry is open to attach them to.
func (e *Extractor) ExtractEducation(text string) []models.EducationEntry {
	education := []models.EducationEntry{}

	m := patterns.EducationSection.FindStringSubmatch(text)
	if m == nil {
		return education
	}

	var current *models.EducationEntry
	for _, line := range strings.Split(m[1], "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lineLower := strings.ToLower(line)

		if containsEducationKeyword(lineLower) {
			if current != nil {
				education = append(education, *current)
			}
			current = &models.EducationEntry{Degree: line}
		}

		if year := patterns.Year.FindString(line); year != "" && current != nil {
			current.Year = year
		}

		if current != nil && current.Institution == "" && !containsEducationKeyword(lineLower) {
			current.Institution = line
		}
	}
	if current != nil {
		education = append(education, *current)
	}

	return education
}

// ExtractExperience isolates the experience section and splits it into job
// blocks on blank lines. Within each block the first line is split into
// title and company, a year range anywhere in the block becomes the
// duration, and the remaining lines form the description.
func (e *Extractor) ExtractExperience(text string) []models.ExperienceEntry {
	experience := []models.ExperienceEntry{}

	m := patterns.ExperienceSection.FindStringSubmatch(text)
	if m == nil {
		return experience
	}

	for _, block := range patterns.BlockDelimiter.Split(m[1], -1) {
		if strings.TrimSpace(block) == "" {
			continue
		}

		lines := nonEmptyLines(block)
		if len(lines) == 0 {
			continue
		}

		entry := models.ExperienceEntry{}
		parts := patterns.TitleDelimiter.Split(lines[0], -1)
		if len(parts) > 0 {
			entry.Title = strings.TrimSpace(parts[0])
		}
		if len(parts) > 1 {
			entry.Company = strings.TrimSpace(parts[1])
		}

		entry.Duration = patterns.YearRange.FindString(block)
		entry.Description = strings.Join(lines[1:], "\n")

		experience = append(experience, entry)
	}

	return experience
}

func containsEducationKeyword(lineLower string) bool {
	for _, kw := range patterns.EducationKeywords {
		if strings.Contains(lineLower, kw) {
			return true
		}
	}
	return false
}

func nonEmptyLines(block string) []string {
	lines := []string{}
	for _, line := range strings.Split(block, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
