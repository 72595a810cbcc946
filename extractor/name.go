package extractor

import (
	"strings"

	"github.com/jdkato/prose/v2"
)

// ExtractName finds the candidate's name with a two-tier fallback. Tier 1
// runs person-entity recognition over just the first five lines; the excerpt
// keeps inference cheap and avoids person names buried in job descriptions.
// Tier 2 takes the first short, digit-free line, which on most resumes is
// the header name the recognizer missed.
func (e *Extractor) ExtractName(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > 5 {
		lines = lines[:5]
	}

	excerpt := strings.Join(lines, " ")
	if doc, err := prose.NewDocument(excerpt, prose.WithSegmentation(false)); err == nil {
		for _, ent := range doc.Entities() {
			if ent.Label == "PERSON" {
				return ent.Text
			}
		}
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(strings.Fields(line)) <= 4 && !strings.ContainsAny(line, "0123456789") {
			return line
		}
	}

	return NotFound
}
