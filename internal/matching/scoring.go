package matching

// Skill coverage bonus and penalty tuning.
const (
	abundanceBonusPerSkill = 0.5
	abundanceBonusCap      = 5.0
	missingPenaltyPerSkill = 1.0
)

// skillCoverageScore scores how well matched skills cover the job's
// requirements, on a 0-100 scale. The base is the matched ratio; a small
// bonus rewards resumes listing more skills than required, and a penalty
// applies when fewer than half the required skills matched.
//
// When the job requires zero skills the score is 0, matching the reference
// behavior (see Engine's zeroRequiredSkillsFull option for the alternative).
func skillCoverageScore(matchedCount, totalJobSkills, totalResumeSkills int, zeroRequiredFull bool) float64 {
	if totalJobSkills == 0 {
		if zeroRequiredFull {
			return 100.0
		}
		return 0.0
	}

	score := float64(matchedCount) / float64(totalJobSkills) * 100

	if totalResumeSkills > totalJobSkills {
		bonus := float64(totalResumeSkills-totalJobSkills) * abundanceBonusPerSkill
		if bonus > abundanceBonusCap {
			bonus = abundanceBonusCap
		}
		score += bonus
	}

	halfRequired := float64(totalJobSkills) * 0.5
	if float64(matchedCount) < halfRequired {
		score -= (halfRequired - float64(matchedCount)) * missingPenaltyPerSkill
	}

	return clampScore(score)
}

// experienceScore compares years of experience on a 0-100 scale. Missing
// years count as zero on both sides; no requirement is trivially satisfied.
func experienceScore(resumeYears, requiredYears int) float64 {
	if resumeYears < 0 {
		resumeYears = 0
	}
	if requiredYears <= 0 {
		return 100.0
	}
	if resumeYears >= requiredYears {
		return 100.0
	}
	return clampScore(float64(resumeYears) / float64(requiredYears) * 100)
}

// certificationsScore scores required certifications against the resume's
// skill list, which serves as a proxy for certifications it may contain.
// Comparison is a case-insensitive set intersection.
func certificationsScore(resumeSkills, requiredCerts []string) float64 {
	required := lowerSet(requiredCerts)
	if len(required) == 0 {
		return 100.0
	}
	if len(resumeSkills) == 0 {
		return 0.0
	}

	resume := lowerSet(resumeSkills)
	held := 0
	for cert := range required {
		if _, ok := resume[cert]; ok {
			held++
		}
	}
	return clampScore(float64(held) / float64(len(required)) * 100)
}

// clampScore bounds a score to [0, 100].
func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
