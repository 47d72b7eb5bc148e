package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillCoverageScore_FullMatch(t *testing.T) {
	score := skillCoverageScore(5, 5, 5, false)

	assert.Equal(t, 100.0, score)
}

func TestSkillCoverageScore_AbundanceBonus(t *testing.T) {
	// 3/5 matched = 60 base, 2 extra resume skills = +1 bonus.
	score := skillCoverageScore(3, 5, 7, false)

	assert.InDelta(t, 61.0, score, 1e-9)
}

func TestSkillCoverageScore_BonusIsCapped(t *testing.T) {
	// 20 extra skills would be +10; the bonus caps at 5.
	score := skillCoverageScore(5, 5, 25, false)

	assert.Equal(t, 100.0, score)

	score = skillCoverageScore(4, 5, 25, false)
	assert.InDelta(t, 85.0, score, 1e-9) // 80 base + 5 capped bonus
}

func TestSkillCoverageScore_UnderHalfPenalty(t *testing.T) {
	// 2/5 matched = 40 base, penalty (2.5 - 2) * 1.0 = 0.5.
	score := skillCoverageScore(2, 5, 3, false)

	assert.InDelta(t, 39.5, score, 1e-9)
}

func TestSkillCoverageScore_ZeroRequired(t *testing.T) {
	assert.Equal(t, 0.0, skillCoverageScore(0, 0, 5, false))
	assert.Equal(t, 100.0, skillCoverageScore(0, 0, 5, true))
}

func TestSkillCoverageScore_ClampsAtZero(t *testing.T) {
	score := skillCoverageScore(0, 10, 0, false)

	assert.Equal(t, 0.0, score)
}

func TestExperienceScore_NoRequirement(t *testing.T) {
	assert.Equal(t, 100.0, experienceScore(0, 0))
	assert.Equal(t, 100.0, experienceScore(7, 0))
}

func TestExperienceScore_MeetsRequirement(t *testing.T) {
	assert.Equal(t, 100.0, experienceScore(5, 5))
	assert.Equal(t, 100.0, experienceScore(6, 5))
}

func TestExperienceScore_PartialCredit(t *testing.T) {
	assert.InDelta(t, 40.0, experienceScore(2, 5), 1e-9)
}

func TestExperienceScore_NegativeYearsTreatedAsZero(t *testing.T) {
	assert.Equal(t, 0.0, experienceScore(-3, 5))
}

func TestCertificationsScore_NoneRequired(t *testing.T) {
	assert.Equal(t, 100.0, certificationsScore([]string{"python"}, nil))
	assert.Equal(t, 100.0, certificationsScore(nil, []string{}))
}

func TestCertificationsScore_RequiredButResumeEmpty(t *testing.T) {
	assert.Equal(t, 0.0, certificationsScore(nil, []string{"AWS Certified"}))
}

func TestCertificationsScore_CaseInsensitiveIntersection(t *testing.T) {
	score := certificationsScore(
		[]string{"Python", "aws certified", "Docker"},
		[]string{"AWS Certified", "CKA"},
	)

	assert.InDelta(t, 50.0, score, 1e-9)
}

func TestClampScore_Bounds(t *testing.T) {
	assert.Equal(t, 0.0, clampScore(-4))
	assert.Equal(t, 100.0, clampScore(104))
	assert.Equal(t, 55.5, clampScore(55.5))
}
