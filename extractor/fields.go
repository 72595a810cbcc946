package extractor

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mugeshkumards/resume-entity-extractor/patterns"
)

// ExtractEmail returns the first email address in the text, in source order.
func (e *Extractor) ExtractEmail(text string) string {
	if email := patterns.Email.FindString(text); email != "" {
		return email
	}
	return NotFound
}

// ExtractPhone returns the first phone-shaped match with at least 10 digits
// after stripping separators. The digit floor filters out years and other
// short numeric tokens that the loose pattern also matches.
func (e *Extractor) ExtractPhone(text string) string {
	for _, candidate := range patterns.Phone.FindAllString(text, -1) {
		if len(patterns.NonDigit.ReplaceAllString(candidate, "")) >= 10 {
			return candidate
		}
	}
	return NotFound
}

// ExtractLinks returns every URL in the text, deduplicated. The URL pattern
// is an alternation with one capture group per shape, so each match carries
// exactly one non-empty group. Order is not guaranteed.
func (e *Extractor) ExtractLinks(text string) []string {
	seen := make(map[string]struct{})
	links := []string{}
	for _, m := range patterns.URL.FindAllStringSubmatch(text, -1) {
		for _, group := range m[1:] {
			if group == "" {
				continue
			}
			if _, ok := seen[group]; !ok {
				seen[group] = struct{}{}
				links = append(links, group)
			}
		}
	}
	return links
}

// ExtractSkills collects skills with a two-pass strategy. Pass 1 scans the
// whole lowercased text for each vocabulary keyword, catching skills buried
// in job descriptions. Pass 2 splits a "skills" section (when one exists)
// on commas, bullets, hyphens and newlines, catching listed skills that the
// fixed vocabulary doesn't know. The result is title-cased, deduplicated
// and sorted alphabetically.
func (e *Extractor) ExtractSkills(text string) []string {
	textLower := strings.ToLower(text)
	caser := cases.Title(language.English)
	found := make(map[string]struct{})

	for _, skill := range patterns.SkillKeywords {
		if strings.Contains(textLower, skill) {
			found[caser.String(skill)] = struct{}{}
		}
	}

	if m := patterns.SkillsSection.FindStringSubmatch(textLower); m != nil {
		for _, item := range patterns.SkillDelimiter.Split(m[1], -1) {
			item = strings.TrimSpace(item)
			if len(item) > 2 && len(item) < 30 {
				found[caser.String(item)] = struct{}{}
			}
		}
	}

	skills := make([]string, 0, len(found))
	for skill := range found {
		skills = append(skills, skill)
	}
	sort.Strings(skills)
	return skills
}
