package extractor

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jdkato/prose/v2"

	"github.com/mugeshkumards/resume-entity-extractor/models"
	"github.com/mugeshkumards/resume-entity-extractor/patterns"
)

// NotFound is returned by scalar extractors when no match exists.
const NotFound = "Not found"

// Extractor pulls structured entities out of raw resume text. It is built
// once at startup and is safe for concurrent use: the compiled patterns are
// read-only and every extraction call works on its own input string.
type Extractor struct{}

// New creates an Extractor and verifies the NLP pipeline is usable.
// Prose ships its English model with the package, but tokenization and NER
// still load model data on first use; probing here turns a broken install
// into a construction error instead of a per-request failure.
func New() (*Extractor, error) {
	if _, err := prose.NewDocument("probe", prose.WithSegmentation(false)); err != nil {
		return nil, fmt.Errorf("failed to initialize NLP pipeline: %w", err)
	}
	return &Extractor{}, nil
}

// ExtractEntities runs every extractor over the text and assembles a single
// result record. It never fails on input shape: missing fields degrade to
// sentinel values or empty lists.
func (e *Extractor) ExtractEntities(text string) *models.ExtractionResult {
	return &models.ExtractionResult{
		Name:             e.ExtractName(text),
		Email:            e.ExtractEmail(text),
		Phone:            e.ExtractPhone(text),
		Links:            e.ExtractLinks(text),
		Skills:           e.ExtractSkills(text),
		Education:        e.ExtractEducation(text),
		Experience:       e.ExtractExperience(text),
		TotalExperience:  e.CalculateExperience(text),
		HighestEducation: e.HighestEducation(text),
	}
}

// CalculateExperience sums every "YYYY - YYYY" and "YYYY - present" range in
// the text. Overlapping ranges are summed without overlap correction; that
// matches the documented behavior and is a known limitation, not a bug.
func (e *Extractor) CalculateExperience(text string) string {
	return calculateExperienceAt(text, time.Now().Year())
}

func calculateExperienceAt(text string, currentYear int) string {
	ranges := patterns.YearRange.FindAllStringSubmatch(text, -1)
	if len(ranges) == 0 {
		return "N/A"
	}

	total := 0
	for _, m := range ranges {
		start, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		end := currentYear
		if !strings.Contains(strings.ToLower(m[2]), "present") {
			end, err = strconv.Atoi(m[2])
			if err != nil {
				continue
			}
		}
		total += end - start
	}

	return fmt.Sprintf("%d years", total)
}

// educationTiers is scanned in priority order: the first tier with any marker
// present in the text wins, independent of document order.
var educationTiers = []struct {
	level   string
	markers []string
}{
	{"PhD", []string{"phd", "ph.d", "doctorate"}},
	{"Master's Degree", []string{"master", "m.tech", "m.sc", "mba"}},
	{"Bachelor's Degree", []string{"bachelor", "b.tech", "b.sc", "b.e"}},
	{"Diploma", []string{"diploma"}},
}

// HighestEducation determines the highest education level mentioned anywhere
// in the text. This is independent of the structured education list and may
// disagree with it.
func (e *Extractor) HighestEducation(text string) string {
	textLower := strings.ToLower(text)
	for _, tier := range educationTiers {
		for _, marker := range tier.markers {
			if strings.Contains(textLower, marker) {
				return tier.level
			}
		}
	}
	return "Not specified"
}
