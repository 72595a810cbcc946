package models

import "encoding/json"

// ExtractionResult holds every entity pulled out of a single resume.
// Scalar fields fall back to sentinel strings ("Not found", "N/A",
// "Not specified") instead of being empty when nothing matched.
type ExtractionResult struct {
	Name             string            `json:"name"`
	Email            string            `json:"email"`
	Phone            string            `json:"phone"`
	Links            []string          `json:"links"`
	Skills           []string          `json:"skills"`
	Education        []EducationEntry  `json:"education"`
	Experience       []ExperienceEntry `json:"experience"`
	TotalExperience  string            `json:"total_experience"`
	HighestEducation string            `json:"highest_education"`
}

// EducationEntry represents one degree found in the education section.
// Fields are empty strings when the section didn't provide them.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// ExperienceEntry represents one job block found in the experience section.
type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// ToJSON converts the extraction result to indented JSON
func (r *ExtractionResult) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
