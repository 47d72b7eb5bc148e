package matching

import (
	"math"
	"sort"
)

// Engine scores resumes against job requirements. It holds no per-call
// state: the TF-IDF vocabulary is rebuilt inside each call, so a single
// Engine is safe for concurrent use.
type Engine struct {
	zeroRequiredSkillsFull bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithFullScoreOnZeroRequiredSkills makes the skills dimension score 100
// when the job declares no required skills. The default preserves the
// reference behavior of scoring 0 in that case.
func WithFullScoreOnZeroRequiredSkills() Option {
	return func(e *Engine) {
		e.zeroRequiredSkillsFull = true
	}
}

// NewEngine creates a match engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Score computes the match between one resume and one job. It never fails:
// malformed weights fall back to defaults, unrecognized education tokens
// rank as "none", and a failing matching pass simply contributes no matches.
func (e *Engine) Score(req *MatchRequest) *MatchResult {
	resumeSkills := lowerList(req.ResumeSkills)
	jobSkills := lowerList(req.JobSkills)

	rec := reconcileSkills(resumeSkills, jobSkills)

	missing := make(map[string]struct{})
	for _, s := range jobSkills {
		if _, ok := rec.matched[s]; !ok {
			missing[s] = struct{}{}
		}
	}

	// Additional skills are the raw set difference against the job list. A
	// resume skill that is also a required skill is never "additional", even
	// when spelling kept it from matching.
	jobSet := lowerSet(jobSkills)
	additional := make(map[string]struct{})
	for _, s := range resumeSkills {
		if _, ok := jobSet[s]; !ok {
			additional[s] = struct{}{}
		}
	}

	weights := resolveWeights(req.Weights)

	skillScore := skillCoverageScore(len(rec.matched), len(jobSkills), len(resumeSkills), e.zeroRequiredSkillsFull)
	expScore := experienceScore(req.ResumeExperienceYears, req.JobRequiredExperienceYears)
	certScore := certificationsScore(req.ResumeSkills, req.JobRequiredCertifications)
	eduScore := educationScore(
		req.ResumeHighestEducationLevel, req.ResumeMajor,
		req.JobRequiredEducationLevel, req.JobRequiredMajor,
	)

	overall := skillScore*weights.Skills +
		expScore*weights.Experience +
		certScore*weights.Certifications +
		eduScore*weights.Education

	return &MatchResult{
		OverallScore:     round2(clampScore(overall)),
		MatchedSkills:    sortedSlice(rec.matched),
		MissingSkills:    sortedSlice(missing),
		AdditionalSkills: sortedSlice(additional),
		MatchDetails: MatchDetails{
			ExactMatchesCount:    rec.exactCount,
			FuzzyMatchesCount:    rec.fuzzyCount,
			SemanticMatchesCount: rec.semCount,
			TotalJobSkills:       len(jobSkills),
			TotalResumeSkills:    len(resumeSkills),

			SkillScore:          round2(skillScore),
			ExperienceScore:     round2(expScore),
			CertificationsScore: round2(certScore),
			EducationScore:      round2(eduScore),

			ResumeExperienceYears:       req.ResumeExperienceYears,
			JobRequiredExperienceYears:  req.JobRequiredExperienceYears,
			JobRequiredCertifications:   req.JobRequiredCertifications,
			ResumeHighestEducationLevel: req.ResumeHighestEducationLevel,
			ResumeMajor:                 req.ResumeMajor,
			JobRequiredEducationLevel:   req.JobRequiredEducationLevel,
			JobRequiredMajor:            req.JobRequiredMajor,

			AppliedWeights: weights,
		},
	}
}

// RankResumes scores every resume against one job and returns the results
// sorted by overall score, highest first. Ties keep input order.
func (e *Engine) RankResumes(job JobProfile, resumes []ResumeProfile) []RankedResume {
	ranked := make([]RankedResume, 0, len(resumes))
	for _, resume := range resumes {
		result := e.Score(&MatchRequest{
			ResumeSkills:                resume.Skills,
			JobSkills:                   job.Skills,
			ResumeExperienceYears:       resume.ExperienceYears,
			JobRequiredExperienceYears:  job.ExperienceYears,
			JobRequiredCertifications:   job.Certifications,
			ResumeHighestEducationLevel: resume.EducationLevel,
			ResumeMajor:                 resume.Major,
			JobRequiredEducationLevel:   job.EducationLevel,
			JobRequiredMajor:            job.Major,
			Weights:                     job.Weights,
		})
		ranked = append(ranked, RankedResume{
			ResumeID: resume.ID,
			Filename: resume.Filename,
			Result:   result,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Result.OverallScore > ranked[j].Result.OverallScore
	})
	return ranked
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
