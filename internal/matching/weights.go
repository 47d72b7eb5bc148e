package matching

import "math"

// Default score weights. They sum to 1.0.
const (
	defaultSkillsWeight         = 0.60
	defaultExperienceWeight     = 0.20
	defaultCertificationsWeight = 0.10
	defaultEducationWeight      = 0.10
)

// weightSumTolerance is the floating tolerance for treating a weight vector
// as already normalized.
const weightSumTolerance = 1e-6

// Weights holds the relative importance of each scoring dimension.
type Weights struct {
	Skills         float64 `json:"skills"`
	Experience     float64 `json:"experience"`
	Certifications float64 `json:"certifications"`
	Education      float64 `json:"education"`
}

// DefaultWeights returns the standard weight vector: skills 0.60,
// experience 0.20, certifications 0.10, education 0.10.
func DefaultWeights() Weights {
	return Weights{
		Skills:         defaultSkillsWeight,
		Experience:     defaultExperienceWeight,
		Certifications: defaultCertificationsWeight,
		Education:      defaultEducationWeight,
	}
}

// sum returns the total of all four weights.
func (w Weights) sum() float64 {
	return w.Skills + w.Experience + w.Certifications + w.Education
}

// resolveWeights returns the weight vector to apply for a request. A nil
// override means defaults. An override that sums to ~1 is used as supplied;
// one with a different positive sum is renormalized; a vector with any
// negative component or a sum of ~0 falls back to defaults. The caller can
// detect the fallback through MatchDetails.AppliedWeights.
func resolveWeights(override *Weights) Weights {
	if override == nil {
		return DefaultWeights()
	}

	w := *override
	if w.Skills < 0 || w.Experience < 0 || w.Certifications < 0 || w.Education < 0 {
		return DefaultWeights()
	}

	total := w.sum()
	if total < weightSumTolerance {
		return DefaultWeights()
	}
	if math.Abs(total-1.0) <= weightSumTolerance {
		return w
	}

	return Weights{
		Skills:         w.Skills / total,
		Experience:     w.Experience / total,
		Certifications: w.Certifications / total,
		Education:      w.Education / total,
	}
}
