package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanExperienceYears(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"single figure", "over 5 years of experience", 5},
		{"takes the maximum", "3 years at acme, 7 years at globex", 7},
		{"plus suffix", "10+ years building services", 10},
		{"fractional", "2.5 years of go", 2.5},
		{"ignores implausible figures", "since 1995 years ago", 0},
		{"no figure", "experienced engineer", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scanExperienceYears(tt.text))
		})
	}
}

func TestScanEducationLevel(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"phd", "holds a phd in physics", "phd"},
		{"highest degree wins", "master of science, bachelor of arts", "master"},
		{"mba counts as master", "mba from a state school", "master"},
		{"diploma", "high school diploma", "diploma"},
		{"none stated", "self taught programmer", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scanEducationLevel(tt.text))
		})
	}
}

func TestScanMajor(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"of science in", "bachelor of science in computer science from state university", "computer science"},
		{"apostrophe in", "master's in data science preferred", "data science"},
		{"of form", "bachelor of electrical engineering", "electrical engineering"},
		{"none stated", "ten years of professional experience", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scanMajor(tt.text))
		})
	}
}

func TestScanSkills_WholeWordMatching(t *testing.T) {
	e := NewExtractor(nil, nil, nil)

	skills := e.scanSkills("experience with javascript and microservice architecture")
	assert.Contains(t, skills, "javascript")
	// "java" must not fire inside "javascript", nor "c" inside "architecture".
	assert.NotContains(t, skills, "java")
	assert.NotContains(t, skills, "c")
}

func TestScanSkills_MultiWordAndPunctuation(t *testing.T) {
	e := NewExtractor(nil, nil, nil)

	skills := e.scanSkills("built a rest api backed by postgresql.")
	assert.Contains(t, skills, "rest api")
	assert.Contains(t, skills, "postgresql")
}

func TestScanCertifications(t *testing.T) {
	found := scanCertifications("aws certified solutions architect and cissp holder")
	assert.Contains(t, found, "aws certified")
	assert.Contains(t, found, "cissp")
	assert.NotContains(t, found, "pmp")
}
