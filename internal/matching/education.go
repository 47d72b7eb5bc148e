package matching

import (
	"regexp"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Education score composition: the level comparison dominates, with the
// major comparison contributing the rest when the job names one.
const (
	educationLevelWeight = 0.7
	educationMajorWeight = 0.3

	// Partial level credit is capped below full credit.
	partialLevelCredit = 70.0
)

// educationRanks maps normalized education-level tokens to ordinal ranks.
// Unrecognized tokens rank 0, same as "none". Normalization strips spaces,
// apostrophes, and periods, so "High School" and "Bachelor's" hit the table.
var educationRanks = map[string]int{
	"phd":         5,
	"doctorate":   5,
	"doctoral":    5,
	"master":      4,
	"masters":     4,
	"bachelor":    3,
	"bachelors":   3,
	"associate":   2,
	"associates":  2,
	"diploma":     1,
	"certificate": 1,
	"highschool":  1,
	"none":        0,
}

// majorAbbreviations expands common degree-field abbreviations before
// comparison.
var majorAbbreviations = map[string]string{
	"cs":   "computer science",
	"cse":  "computer science and engineering",
	"ce":   "computer engineering",
	"se":   "software engineering",
	"it":   "information technology",
	"is":   "information systems",
	"ee":   "electrical engineering",
	"ece":  "electronics and communication engineering",
	"me":   "mechanical engineering",
	"ai":   "artificial intelligence",
	"ml":   "machine learning",
	"ds":   "data science",
	"math": "mathematics",
	"stat": "statistics",
	"econ": "economics",
	"ba":   "business administration",
	"mis":  "management information systems",
}

var parentheticalRe = regexp.MustCompile(`\([^)]*\)`)

// educationRank looks up the ordinal rank of a free-text education level.
func educationRank(level string) int {
	normalized := strings.ToLower(level)
	for _, drop := range []string{" ", "'", ".", "-"} {
		normalized = strings.ReplaceAll(normalized, drop, "")
	}
	return educationRanks[normalized]
}

// normalizeMajor lowercases a major, strips parenthetical qualifiers, and
// expands known abbreviations.
func normalizeMajor(major string) string {
	m := parentheticalRe.ReplaceAllString(major, "")
	m = strings.ToLower(strings.TrimSpace(m))
	m = strings.Join(strings.Fields(m), " ")
	if full, ok := majorAbbreviations[m]; ok {
		return full
	}
	return m
}

// majorRequired reports whether the job actually constrains the major.
func majorRequired(jobMajor string) bool {
	m := strings.ToLower(strings.TrimSpace(jobMajor))
	return m != "" && m != "none"
}

// majorMatchScore compares two majors on a 0-100 ladder: exact normalized
// match, then high full-ratio, then strong partial-ratio, then substring
// containment in either direction.
func majorMatchScore(resumeMajor, jobMajor string) float64 {
	resume := normalizeMajor(resumeMajor)
	job := normalizeMajor(jobMajor)
	if resume == "" || job == "" {
		return 0
	}

	switch {
	case resume == job:
		return 100
	case fuzzy.Ratio(resume, job) > 85:
		return 90
	case fuzzy.PartialRatio(resume, job) > 90:
		return 80
	case strings.Contains(resume, job) || strings.Contains(job, resume):
		return 70
	default:
		return 0
	}
}

// educationScore compares education level and, when the job requires one,
// major. The level component carries 70% of the score and the major 30%;
// with no major requirement the level stands alone.
func educationScore(resumeLevel, resumeMajor, jobLevel, jobMajor string) float64 {
	requiredRank := educationRank(jobLevel)
	resumeRank := educationRank(resumeLevel)

	var levelComponent float64
	switch {
	case requiredRank == 0:
		levelComponent = 100
	case resumeRank >= requiredRank:
		levelComponent = 100
	case resumeRank > 0:
		levelComponent = float64(resumeRank) / float64(requiredRank) * partialLevelCredit
	default:
		levelComponent = 0
	}

	if !majorRequired(jobMajor) {
		return clampScore(levelComponent)
	}

	majorComponent := majorMatchScore(resumeMajor, jobMajor)
	return clampScore(levelComponent*educationLevelWeight + majorComponent*educationMajorWeight)
}
