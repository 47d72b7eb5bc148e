package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/skillsdb"
)

// Extractor structures resume and job posting text.
type Extractor struct {
	client llm.Client
	skills *skillsdb.DB
	logger *zap.Logger
}

// NewExtractor creates an Extractor. client may be nil, in which case every
// extraction uses the keyword fallback.
func NewExtractor(client llm.Client, skills *skillsdb.DB, logger *zap.Logger) *Extractor {
	if skills == nil {
		skills = skillsdb.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{client: client, skills: skills, logger: logger}
}

// ExtractResume structures resume text into a ResumeProfile.
func (e *Extractor) ExtractResume(ctx context.Context, text string) (*ResumeProfile, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("resume text is empty")
	}

	if e.client != nil {
		profile, err := e.resumeViaLLM(ctx, text)
		if err == nil {
			return profile, nil
		}
		e.logger.Warn("resume extraction via LLM failed, falling back to keyword scan", zap.Error(err))
	}

	return e.resumeViaKeywords(text), nil
}

// ExtractJob structures job posting text into JobRequirements.
func (e *Extractor) ExtractJob(ctx context.Context, text string) (*JobRequirements, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("job posting text is empty")
	}

	if e.client != nil {
		reqs, err := e.jobViaLLM(ctx, text)
		if err == nil {
			return reqs, nil
		}
		e.logger.Warn("job extraction via LLM failed, falling back to keyword scan", zap.Error(err))
	}

	return e.jobViaKeywords(text), nil
}

func (e *Extractor) resumeViaLLM(ctx context.Context, text string) (*ResumeProfile, error) {
	raw, err := e.client.GenerateJSON(ctx, resumePrompt(text), llm.TierStandard)
	if err != nil {
		return nil, err
	}
	if err := schemas.ValidateJSONString(resumeProfileSchema, raw); err != nil {
		return nil, fmt.Errorf("resume profile failed schema validation: %w", err)
	}

	var profile ResumeProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return nil, fmt.Errorf("failed to decode resume profile: %w", err)
	}
	normalizeResume(&profile)
	return &profile, nil
}

func (e *Extractor) jobViaLLM(ctx context.Context, text string) (*JobRequirements, error) {
	raw, err := e.client.GenerateJSON(ctx, jobPrompt(text), llm.TierStandard)
	if err != nil {
		return nil, err
	}
	if err := schemas.ValidateJSONString(jobRequirementsSchema, raw); err != nil {
		return nil, fmt.Errorf("job requirements failed schema validation: %w", err)
	}

	var reqs JobRequirements
	if err := json.Unmarshal([]byte(raw), &reqs); err != nil {
		return nil, fmt.Errorf("failed to decode job requirements: %w", err)
	}
	normalizeJob(&reqs)
	return &reqs, nil
}

func normalizeResume(p *ResumeProfile) {
	p.Skills = lowerAll(p.Skills)
	p.Certifications = lowerAll(p.Certifications)
	p.HighestEducationLevel = strings.ToLower(strings.TrimSpace(p.HighestEducationLevel))
	p.Major = strings.ToLower(strings.TrimSpace(p.Major))
	if p.ExperienceYears < 0 {
		p.ExperienceYears = 0
	}
}

func normalizeJob(r *JobRequirements) {
	r.Skills = lowerAll(r.Skills)
	r.RequiredCertifications = lowerAll(r.RequiredCertifications)
	r.RequiredEducationLevel = strings.ToLower(strings.TrimSpace(r.RequiredEducationLevel))
	r.RequiredMajor = strings.ToLower(strings.TrimSpace(r.RequiredMajor))
	if r.RequiredExperienceYears < 0 {
		r.RequiredExperienceYears = 0
	}
}

func lowerAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.ToLower(strings.TrimSpace(item))
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
