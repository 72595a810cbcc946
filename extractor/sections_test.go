package extractor

import "testing"

func TestExtractEducation(t *testing.T) {
	e := &Extractor{}

	input := `Education:
Master of Science in Computer Science
Stanford University
2019
Bachelor of Technology
IIT Delhi
2017

Experience:
Engineer | Corp
`

	education := e.ExtractEducation(input)
	if len(education) != 2 {
		t.Fatalf("expected 2 education entries, got %d: %+v", len(education), education)
	}

	first := education[0]
	if first.Degree != "Master of Science in Computer Science" {
		t.Errorf("unexpected first degree: %q", first.Degree)
	}
	if first.Institution != "Stanford University" {
		t.Errorf("unexpected first institution: %q", first.Institution)
	}
	if first.Year != "2019" {
		t.Errorf("unexpected first year: %q", first.Year)
	}

	second := education[1]
	if second.Degree != "Bachelor of Technology" {
		t.Errorf("unexpected second degree: %q", second.Degree)
	}
	if second.Institution != "IIT Delhi" {
		t.Errorf("unexpected second institution: %q", second.Institution)
	}
	if second.Year != "2017" {
		t.Errorf("unexpected second year: %q", second.Year)
	}
}

func TestExtractEducationYearOnDegreeLine(t *testing.T) {
	e := &Extractor{}

	input := "Education:\nBachelor of Arts, 2015\nState College\n"
	education := e.ExtractEducation(input)
	if len(education) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(education))
	}
	if education[0].Year != "2015" {
		t.Errorf("year on the degree line should attach to the entry, got %q", education[0].Year)
	}
	if education[0].Institution != "State College" {
		t.Errorf("unexpected institution: %q", education[0].Institution)
	}
}

func TestExtractEducationLeadingLinesDropped(t *testing.T) {
	e := &Extractor{}

	// Lines before the first degree keyword have no open entry to attach
	// to and are dropped.
	input := "Education:\nSome University\nBachelor of Science\n"
	education := e.ExtractEducation(input)
	if len(education) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(education))
	}
	if education[0].Institution != "" {
		t.Errorf("leading line should not become the institution, got %q", education[0].Institution)
	}
}

func TestExtractEducationMissingSection(t *testing.T) {
	e := &Extractor{}

	education := e.ExtractEducation("just a plain paragraph with no headings")
	if education == nil {
		t.Fatal("education must be an empty slice, not nil")
	}
	if len(education) != 0 {
		t.Errorf("expected no entries, got %+v", education)
	}
}

func TestExtractEducationNoDegreeKeyword(t *testing.T) {
	e := &Extractor{}

	// Section exists but no line carries a degree keyword: degrades to empty.
	input := "Education:\nSome University\nSome City\n"
	education := e.ExtractEducation(input)
	if len(education) != 0 {
		t.Errorf("expected no entries without degree keywords, got %+v", education)
	}
}

func TestExtractExperience(t *testing.T) {
	e := &Extractor{}

	input := `Experience:
Senior Software Engineer | Tech Corp
2021 - Present
Led development of microservices
Mentored junior developers

Software Engineer | StartupXYZ
2019 - 2021
Built RESTful APIs

Education:
Bachelor of Science
`

	experience := e.ExtractExperience(input)
	if len(experience) != 2 {
		t.Fatalf("expected 2 experience entries, got %d: %+v", len(experience), experience)
	}

	first := experience[0]
	if first.Title != "Senior Software Engineer" {
		t.Errorf("unexpected title: %q", first.Title)
	}
	if first.Company != "Tech Corp" {
		t.Errorf("unexpected company: %q", first.Company)
	}
	if first.Duration != "2021 - Present" {
		t.Errorf("unexpected duration: %q", first.Duration)
	}
	if first.Description != "2021 - Present\nLed development of microservices\nMentored junior developers" {
		t.Errorf("unexpected description: %q", first.Description)
	}

	second := experience[1]
	if second.Title != "Software Engineer" {
		t.Errorf("unexpected title: %q", second.Title)
	}
	if second.Company != "StartupXYZ" {
		t.Errorf("unexpected company: %q", second.Company)
	}
	if second.Duration != "2019 - 2021" {
		t.Errorf("unexpected duration: %q", second.Duration)
	}
}

func TestExtractExperienceTitleOnly(t *testing.T) {
	e := &Extractor{}

	input := "Experience:\nFreelance Consulting\n"
	experience := e.ExtractExperience(input)
	if len(experience) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(experience))
	}
	if experience[0].Title != "Freelance Consulting" {
		t.Errorf("unexpected title: %q", experience[0].Title)
	}
	if experience[0].Company != "" {
		t.Errorf("company should be empty, got %q", experience[0].Company)
	}
	if experience[0].Duration != "" {
		t.Errorf("duration should be empty, got %q", experience[0].Duration)
	}
}

func TestExtractExperienceMissingSection(t *testing.T) {
	e := &Extractor{}

	experience := e.ExtractExperience("nothing resembling a resume")
	if experience == nil {
		t.Fatal("experience must be an empty slice, not nil")
	}
	if len(experience) != 0 {
		t.Errorf("expected no entries, got %+v", experience)
	}
}
