package matching

import (
	"fmt"
	"strings"
)

// Readiness levels bucket the overall score for gap analysis.
const (
	ReadinessExcellent = "Excellent Match"
	ReadinessGood      = "Good Match"
	ReadinessFair      = "Fair Match"
	ReadinessPartial   = "Partial Match"
	ReadinessNotReady  = "Not Ready"
)

// maxStrengths caps how many additional skills are surfaced as strengths.
const maxStrengths = 5

// criticalSkillKeywords and importantSkillKeywords drive the missing-skill
// triage. The buckets are a coarse heuristic, not a skill ontology.
var (
	criticalSkillKeywords = []string{
		"python", "java", "sql", "javascript", "aws", "docker", "kubernetes",
	}
	importantSkillKeywords = []string{
		"git", "agile", "api", "database", "cloud", "frontend", "backend",
	}
)

// GapAnalysis describes how far a resume is from a job's requirements and
// what to do about it.
type GapAnalysis struct {
	OverallScore        float64  `json:"overall_score"`
	ReadinessLevel      string   `json:"readiness_level"`
	MatchedSkillsCount  int      `json:"matched_skills_count"`
	TotalRequiredSkills int      `json:"total_required_skills"`
	CriticalMissing     []string `json:"critical_missing"`
	ImportantMissing    []string `json:"important_missing"`
	NiceToHaveMissing   []string `json:"nice_to_have_missing"`
	Strengths           []string `json:"strengths"`
	Recommendations     []string `json:"recommendations"`
}

// AnalyzeSkillGap scores the resume against the job's skill list and
// categorizes the missing skills into critical, important, and nice-to-have
// buckets with actionable recommendations.
func (e *Engine) AnalyzeSkillGap(resumeSkills, jobSkills []string) *GapAnalysis {
	result := e.Score(&MatchRequest{
		ResumeSkills: resumeSkills,
		JobSkills:    jobSkills,
	})

	var critical, important, niceToHave []string
	for _, skill := range result.MissingSkills {
		switch {
		case containsAny(skill, criticalSkillKeywords):
			critical = append(critical, skill)
		case containsAny(skill, importantSkillKeywords):
			important = append(important, skill)
		default:
			niceToHave = append(niceToHave, skill)
		}
	}

	strengths := result.AdditionalSkills
	if len(strengths) > maxStrengths {
		strengths = strengths[:maxStrengths]
	}

	return &GapAnalysis{
		OverallScore:        result.OverallScore,
		ReadinessLevel:      readinessLevel(result.OverallScore),
		MatchedSkillsCount:  len(result.MatchedSkills),
		TotalRequiredSkills: len(jobSkills),
		CriticalMissing:     critical,
		ImportantMissing:    important,
		NiceToHaveMissing:   niceToHave,
		Strengths:           strengths,
		Recommendations:     buildRecommendations(critical, important),
	}
}

// readinessLevel maps an overall score to a readiness band.
func readinessLevel(score float64) string {
	switch {
	case score >= 80:
		return ReadinessExcellent
	case score >= 60:
		return ReadinessGood
	case score >= 40:
		return ReadinessFair
	case score >= 20:
		return ReadinessPartial
	default:
		return ReadinessNotReady
	}
}

// containsAny reports whether the skill contains any of the keywords.
func containsAny(skill string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(skill, kw) {
			return true
		}
	}
	return false
}

// buildRecommendations turns the triaged missing skills into guidance text.
func buildRecommendations(critical, important []string) []string {
	var recs []string

	if len(critical) > 0 {
		recs = append(recs, fmt.Sprintf(
			"Priority: Focus on acquiring or strengthening skills in %s as these are crucial for the role.",
			strings.Join(capList(critical, 3), ", ")))
	}
	if len(important) > 0 {
		recs = append(recs, fmt.Sprintf(
			"Consider developing skills in %s to significantly improve your profile's alignment.",
			strings.Join(capList(important, 3), ", ")))
	}
	if len(critical) == 0 && len(important) == 0 {
		recs = append(recs, "Excellent skill alignment! Your profile strongly matches the requirements. Focus on gaining practical experience with your existing skills.")
	}

	recs = append(recs,
		"Tailor your resume and cover letter to prominently feature your matched skills and experiences relevant to this job description.",
		"For any missing skills, consider online courses, certifications, or personal projects to build proficiency.")
	return recs
}

// capList limits a slice to at most n entries.
func capList(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}
