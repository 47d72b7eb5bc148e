package extraction

import (
	"regexp"
	"strconv"
	"strings"
)

// Keyword fallback. Slower and less precise than the LLM path but entirely
// offline: skills come from a scan against the skills database, experience
// from date arithmetic style patterns, education from degree keywords.

var (
	experienceRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*\+?\s*years?`)
	wordRe       = regexp.MustCompile(`[a-z0-9+#.]+`)

	certificationPatterns = []string{
		"aws certified",
		"azure certified",
		"google cloud certified",
		"gcp certified",
		"cissp",
		"ckad",
		"cka",
		"pmp",
		"comptia",
		"ccna",
		"ccnp",
		"scrum master",
	}
)

func (e *Extractor) resumeViaKeywords(text string) *ResumeProfile {
	lower := strings.ToLower(text)
	return &ResumeProfile{
		Skills:                e.scanSkills(lower),
		ExperienceYears:       scanExperienceYears(lower),
		Certifications:        scanCertifications(lower),
		HighestEducationLevel: scanEducationLevel(lower),
		Major:                 scanMajor(lower),
	}
}

func (e *Extractor) jobViaKeywords(text string) *JobRequirements {
	lower := strings.ToLower(text)
	return &JobRequirements{
		Skills:                  e.scanSkills(lower),
		RequiredExperienceYears: scanExperienceYears(lower),
		RequiredCertifications:  scanCertifications(lower),
		RequiredEducationLevel:  scanEducationLevel(lower),
		RequiredMajor:           scanMajor(lower),
	}
}

// scanSkills finds every skills database entry present in the text. Matches
// are whole-word so "c" does not fire inside "architecture".
func (e *Extractor) scanSkills(lower string) []string {
	words := make(map[string]bool)
	for _, w := range wordRe.FindAllString(lower, -1) {
		words[w] = true
		// The dot stays in the token class for "node.js", so sentence
		// punctuation sticks to the last word.
		words[strings.TrimRight(w, ".")] = true
	}

	var found []string
	for _, skill := range e.skills.AllSkills() {
		if strings.Contains(skill, " ") {
			if strings.Contains(lower, skill) {
				found = append(found, skill)
			}
			continue
		}
		if words[skill] {
			found = append(found, skill)
		}
	}
	return found
}

// scanExperienceYears returns the largest "N years" figure in the text.
// Resumes state tenure per role, so the maximum is the best cheap estimate
// of the overall span.
func scanExperienceYears(lower string) float64 {
	var best float64
	for _, m := range experienceRe.FindAllStringSubmatch(lower, -1) {
		years, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		// Figures above a working lifetime are dates or typos.
		if years > 50 {
			continue
		}
		if years > best {
			best = years
		}
	}
	return best
}

func scanCertifications(lower string) []string {
	var found []string
	for _, pattern := range certificationPatterns {
		if strings.Contains(lower, pattern) {
			found = append(found, pattern)
		}
	}
	return found
}

// educationKeywords in descending rank order so the first hit wins.
var educationKeywords = []struct {
	keywords []string
	level    string
}{
	{[]string{"phd", "ph.d", "doctorate", "doctoral"}, "phd"},
	{[]string{"master", "m.s.", "msc", "mba"}, "master"},
	{[]string{"bachelor", "b.s.", "bsc", "b.a."}, "bachelor"},
	{[]string{"associate degree", "associate's"}, "associate"},
	{[]string{"diploma", "high school"}, "diploma"},
}

func scanEducationLevel(lower string) string {
	for _, entry := range educationKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.level
			}
		}
	}
	return ""
}

var (
	// "bachelor of science in computer science", "master's in data science"
	majorInRe = regexp.MustCompile(`(?:bachelor|master|phd|doctorate|b\.s\.|m\.s\.|bsc|msc|degree)(?:'s)?(?:\s+of\s+(?:science|arts|engineering|business administration))?\s+in\s+([a-z][a-z ]{2,40})`)
	// "bachelor of computer science"
	majorOfRe = regexp.MustCompile(`(?:bachelor|master)(?:'s)?\s+of\s+([a-z][a-z ]{2,40})`)
)

func scanMajor(lower string) string {
	m := majorInRe.FindStringSubmatch(lower)
	if m == nil {
		m = majorOfRe.FindStringSubmatch(lower)
	}
	if m == nil {
		return ""
	}
	major := strings.TrimSpace(m[1])
	// Cut at filler words that follow the field of study.
	for _, stop := range []string{" from ", " at ", " with ", " and ", " or ", " preferred", " required", " desired"} {
		if idx := strings.Index(major, stop); idx > 0 {
			major = major[:idx]
		}
	}
	return strings.TrimSpace(major)
}
