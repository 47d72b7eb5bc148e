package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/documents"
	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/skillsdb"
)

var (
	scoreResumePath string
	scoreJobPath    string
	scoreSkillsDB   string
	scoreFullOnZero bool
	scoreVerbose    bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one resume against one job description",
	Long: `Score a resume file (PDF, DOCX, or plain text) against a job description
text file and print the match result as JSON. Extraction uses the Gemini API
when GEMINI_API_KEY is set and falls back to keyword scanning otherwise.`,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVarP(&scoreResumePath, "resume", "r", "", "Path to resume file (required)")
	scoreCmd.Flags().StringVarP(&scoreJobPath, "job", "j", "", "Path to job description text file (required)")
	scoreCmd.Flags().StringVar(&scoreSkillsDB, "skills-db", "", "Custom skills database JSON (default built-in)")
	scoreCmd.Flags().BoolVar(&scoreFullOnZero, "full-score-on-zero-skills", false, "Score the skills dimension 100 when the job lists no required skills")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Log extraction fallbacks to stderr")

	scoreCmd.MarkFlagRequired("resume")
	scoreCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	resumeText, err := readDocument(scoreResumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	jobData, err := os.ReadFile(scoreJobPath)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}
	jobText := documents.CleanText(string(jobData))

	extractor, closeClient, err := buildExtractor(ctx)
	if err != nil {
		return err
	}
	defer closeClient()

	profile, err := extractor.ExtractResume(ctx, resumeText)
	if err != nil {
		return fmt.Errorf("failed to structure resume: %w", err)
	}
	requirements, err := extractor.ExtractJob(ctx, jobText)
	if err != nil {
		return fmt.Errorf("failed to structure job description: %w", err)
	}

	var opts []matching.Option
	if scoreFullOnZero {
		opts = append(opts, matching.WithFullScoreOnZeroRequiredSkills())
	}
	engine := matching.NewEngine(opts...)

	result := engine.Score(&matching.MatchRequest{
		ResumeSkills:                profile.Skills,
		JobSkills:                   requirements.Skills,
		ResumeExperienceYears:       int(profile.ExperienceYears),
		JobRequiredExperienceYears:  int(requirements.RequiredExperienceYears),
		JobRequiredCertifications:   requirements.RequiredCertifications,
		ResumeHighestEducationLevel: profile.HighestEducationLevel,
		ResumeMajor:                 profile.Major,
		JobRequiredEducationLevel:   requirements.RequiredEducationLevel,
		JobRequiredMajor:            requirements.RequiredMajor,
	})

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// readDocument loads a resume file and extracts its text.
func readDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	text, err := documents.ExtractText(path, data)
	if err != nil {
		return "", err
	}
	return documents.CleanText(text), nil
}

// buildExtractor assembles the extraction stack from flags and environment.
func buildExtractor(ctx context.Context) (*extraction.Extractor, func(), error) {
	skills := skillsdb.Default()
	if scoreSkillsDB != "" {
		loaded, err := skillsdb.Load(scoreSkillsDB)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load skills database: %w", err)
		}
		skills = loaded
	}

	logger := zap.NewNop()
	if scoreVerbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create logger: %w", err)
		}
		logger = dev
	}

	closeClient := func() {}
	var client llm.Client
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		c, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		client = c
		closeClient = func() { _ = c.Close() }
	}

	return extraction.NewExtractor(client, skills, logger), closeClient, nil
}
