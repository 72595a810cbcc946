package utils

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mugeshkumards/resume-entity-extractor/models"
)

func sampleResult() *models.ExtractionResult {
	return &models.ExtractionResult{
		Name:   "Jane Doe",
		Email:  "jane@example.com",
		Phone:  "+1-555-123-4567",
		Links:  []string{"github.com/jane"},
		Skills: []string{"Docker", "Python"},
		Education: []models.EducationEntry{
			{Degree: "Bachelor of Science", Institution: "State College", Year: "2017"},
		},
		Experience: []models.ExperienceEntry{
			{Title: "Engineer", Company: "Acme", Duration: "2018 - 2021", Description: "built things"},
		},
		TotalExperience:  "3 years",
		HighestEducation: "Bachelor's Degree",
	}
}

func TestBuildCSV(t *testing.T) {
	data, err := BuildCSV(sampleResult())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Name", records[0][0])
	assert.Equal(t, "Jane Doe", records[1][0])
	assert.Equal(t, "jane@example.com", records[1][1])
	assert.Equal(t, "Docker, Python", records[1][4])
	assert.Equal(t, "3 years", records[1][5])
}

func TestBuildTextReport(t *testing.T) {
	report := BuildTextReport(sampleResult())

	assert.Contains(t, report, "RESUME ANALYSIS REPORT")
	assert.Contains(t, report, "Name: Jane Doe")
	assert.Contains(t, report, "SKILLS (2)")
	assert.Contains(t, report, "- Docker")
	assert.Contains(t, report, "Total Experience: 3 years")
	assert.Contains(t, report, "Bachelor's Degree")
	assert.Contains(t, report, "Bachelor of Science | State College | 2017")
}

func TestBuildWordReport(t *testing.T) {
	data, err := BuildWordReport(sampleResult())
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	// DOCX files are zip archives.
	assert.Equal(t, byte('P'), data[0])
	assert.Equal(t, byte('K'), data[1])
}
