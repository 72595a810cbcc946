package patterns

import "regexp"

// Compiled patterns shared by all extractors. Everything here is read-only
// after package init and safe to use from concurrent extractions.
var (
	// Email matches local-part@domain.tld shapes.
	Email = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Phone matches loose digit groups with -, space or . separators,
	// optional parentheses and a leading +. Candidates still need the
	// >=10 digit filter to be accepted as real phone numbers.
	Phone = regexp.MustCompile(`\+?\(?[0-9]{1,4}\)?[-\s.]?\(?[0-9]{1,4}\)?[-\s.]?[0-9]{1,4}[-\s.]?[0-9]{1,9}`)

	// URL matches http(s) URLs, www-prefixed hosts, or bare host.tld paths.
	// Three capture groups, one per alternative.
	URL = regexp.MustCompile(`(?i)(https?://[^\s]+)|(www\.[^\s]+)|([a-zA-Z0-9]+\.[a-zA-Z]{2,}(?:/[^\s]*)?)`)

	// YearRange matches "2019 - 2021" or "2019 - present".
	YearRange = regexp.MustCompile(`(?i)(\d{4})\s*-\s*(\d{4}|present)`)

	// Year matches 4-digit years from 1900 to 2099.
	Year = regexp.MustCompile(`\b(19|20)\d{2}\b`)

	// NonDigit strips everything but digits (phone validation).
	NonDigit = regexp.MustCompile(`[^0-9]`)

	// Section boundaries. RE2 has no lookahead, so the terminating keyword
	// set sits in a non-capturing group after the lazy body; the captured
	// body is the same text a lookahead would produce.
	SkillsSection     = regexp.MustCompile(`(?is)skills[:\s]+(.*?)(?:\n\n|experience|education|$)`)
	EducationSection  = regexp.MustCompile(`(?is)education[:\s]+(.*?)(?:experience|skills|certifications|$)`)
	ExperienceSection = regexp.MustCompile(`(?is)experience[:\s]+(.*?)(?:education|skills|certifications|$)`)

	// SkillDelimiter splits a skills section into candidate tokens.
	SkillDelimiter = regexp.MustCompile(`[,•\-\n]`)

	// TitleDelimiter splits a job title line into title and company parts.
	TitleDelimiter = regexp.MustCompile(`(?i)\||@|at`)

	// BlockDelimiter splits an experience section into job blocks.
	BlockDelimiter = regexp.MustCompile(`\n\n+`)
)

// SkillKeywords is the fixed vocabulary of technologies, tools and concepts
// matched by substring containment against lowercased resume text.
var SkillKeywords = []string{
	"python", "java", "javascript", "c++", "c#", "ruby", "php", "swift", "kotlin",
	"react", "angular", "vue", "node.js", "django", "flask", "spring", "express",
	"sql", "mysql", "postgresql", "mongodb", "redis", "oracle", "nosql",
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "jenkins",
	"git", "agile", "scrum", "jira", "ci/cd", "devops", "microservices",
	"machine learning", "deep learning", "ai", "nlp", "computer vision",
	"pandas", "numpy", "tensorflow", "pytorch", "scikit-learn",
	"html", "css", "typescript", "rest api", "graphql", "kafka", "spark",
}

// EducationKeywords marks lines that open a new education entry.
var EducationKeywords = []string{
	"bachelor", "master", "phd", "b.tech", "m.tech", "b.sc", "m.sc",
	"b.e", "m.e", "mba", "degree", "diploma", "certification",
}
