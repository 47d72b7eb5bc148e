// Package matching provides the resume-to-job match scoring engine.
// It reconciles free-text skill lists through cascaded exact, fuzzy, and
// semantic passes, scores experience, certifications, and education, and
// combines the sub-scores into a single weighted score.
package matching

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// MatchRequest holds the structured fields the engine scores. Skill lists are
// free-text strings; the extraction layer is responsible for producing them.
// Zero values on the optional fields mean "not specified".
type MatchRequest struct {
	ResumeSkills []string `json:"resume_skills"`
	JobSkills    []string `json:"job_skills"`

	ResumeExperienceYears      int `json:"resume_experience_years,omitempty"`
	JobRequiredExperienceYears int `json:"job_required_experience_years,omitempty"`

	JobRequiredCertifications []string `json:"job_required_certifications,omitempty"`

	ResumeHighestEducationLevel string `json:"resume_highest_education_level,omitempty"`
	ResumeMajor                 string `json:"resume_major,omitempty"`
	JobRequiredEducationLevel   string `json:"job_required_education_level,omitempty"`
	JobRequiredMajor            string `json:"job_required_major,omitempty"`

	// Weights overrides the default score weights when non-nil.
	Weights *Weights `json:"weights,omitempty"`
}

// MatchResult is the engine's output. Skill lists are lowercased and sorted
// so identical inputs always produce identical output.
type MatchResult struct {
	OverallScore     float64      `json:"overall_score"`
	MatchedSkills    []string     `json:"matched_skills"`
	MissingSkills    []string     `json:"missing_skills"`
	AdditionalSkills []string     `json:"additional_skills"`
	MatchDetails     MatchDetails `json:"match_details"`
}

// MatchDetails carries the diagnostic breakdown of a match: per-pass counts,
// sub-scores, the raw inputs echoed back, and the weights actually applied.
type MatchDetails struct {
	ExactMatchesCount    int `json:"exact_matches_count"`
	FuzzyMatchesCount    int `json:"fuzzy_matches_count"`
	SemanticMatchesCount int `json:"semantic_matches_count"`
	TotalJobSkills       int `json:"total_job_skills"`
	TotalResumeSkills    int `json:"total_resume_skills"`

	SkillScore          float64 `json:"skill_score"`
	ExperienceScore     float64 `json:"experience_score"`
	CertificationsScore float64 `json:"certifications_score"`
	EducationScore      float64 `json:"education_score"`

	ResumeExperienceYears       int      `json:"resume_experience_years"`
	JobRequiredExperienceYears  int      `json:"job_required_experience_years"`
	JobRequiredCertifications   []string `json:"job_required_certifications,omitempty"`
	ResumeHighestEducationLevel string   `json:"resume_highest_education_level,omitempty"`
	ResumeMajor                 string   `json:"resume_major,omitempty"`
	JobRequiredEducationLevel   string   `json:"job_required_education_level,omitempty"`
	JobRequiredMajor            string   `json:"job_required_major,omitempty"`

	AppliedWeights Weights `json:"applied_weights"`
}

// ResumeProfile is one resume's structured fields for batch ranking.
type ResumeProfile struct {
	ID              uuid.UUID `json:"id"`
	Filename        string    `json:"filename"`
	Skills          []string  `json:"skills"`
	ExperienceYears int       `json:"experience_years,omitempty"`
	EducationLevel  string    `json:"education_level,omitempty"`
	Major           string    `json:"major,omitempty"`
}

// JobProfile is one job's structured requirements for batch ranking.
type JobProfile struct {
	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experience_years,omitempty"`
	Certifications  []string `json:"certifications,omitempty"`
	EducationLevel  string   `json:"education_level,omitempty"`
	Major           string   `json:"major,omitempty"`
	Weights         *Weights `json:"weights,omitempty"`
}

// RankedResume pairs a resume with its match result for a job.
type RankedResume struct {
	ResumeID uuid.UUID    `json:"resume_id"`
	Filename string       `json:"filename"`
	Result   *MatchResult `json:"result"`
}

// lowerSet builds a set of lowercased, trimmed skills. Empty strings are
// dropped; duplicates collapse.
func lowerSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		set[s] = struct{}{}
	}
	return set
}

// lowerList lowercases and trims skills preserving input order, dropping
// empties and duplicates. Iteration order matters for fuzzy tie-breaking.
func lowerList(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// sortedSlice converts a set to a sorted slice. The result is never nil so
// JSON output stays `[]` rather than `null`.
func sortedSlice(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
