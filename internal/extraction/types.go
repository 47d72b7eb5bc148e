// Package extraction turns raw resume and job posting text into the
// structured profiles the match engine scores. An LLM does the structuring;
// a keyword scan over the skills database serves as fallback when the LLM is
// unavailable or returns output that fails schema validation.
package extraction

// ResumeProfile is the structured form of a resume.
type ResumeProfile struct {
	Name                  string   `json:"name,omitempty"`
	Skills                []string `json:"skills"`
	ExperienceYears       float64  `json:"experience_years"`
	Certifications        []string `json:"certifications"`
	HighestEducationLevel string   `json:"highest_education_level"`
	Major                 string   `json:"major"`
}

// JobRequirements is the structured form of a job posting.
type JobRequirements struct {
	Title                   string   `json:"title,omitempty"`
	Skills                  []string `json:"skills"`
	RequiredExperienceYears float64  `json:"required_experience_years"`
	RequiredCertifications  []string `json:"required_certifications"`
	RequiredEducationLevel  string   `json:"required_education_level"`
	RequiredMajor           string   `json:"required_major"`
}
