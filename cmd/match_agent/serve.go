package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/server"
)

var (
	servePort       int
	serveConfigPath string
	serveMigrations string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for resume upload, job ingestion, and match scoring.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	serveCmd.Flags().StringVar(&serveMigrations, "migrations", "", "Run database migrations from this directory before starting")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if serveMigrations != "" {
		if err := db.RunMigrations(cfg.DatabaseURL, serveMigrations); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	srv, err := server.New(server.Config{
		Port:                        cfg.Port,
		DatabaseURL:                 cfg.DatabaseURL,
		GeminiAPIKey:                cfg.APIKey,
		SkillsDBPath:                cfg.SkillsDBPath,
		Weights:                     toEngineWeights(cfg.Weights),
		ZeroRequiredSkillsFullScore: cfg.ZeroRequiredSkillsFullScore,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// resolveConfig loads the optional config file and layers environment
// variables underneath it.
func resolveConfig() (config.Config, error) {
	envCfg, err := config.FromEnv()
	if err != nil {
		return config.Config{}, err
	}

	cfg := *envCfg
	if serveConfigPath != "" {
		fileCfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = fileCfg.MergeWithDefaults(*envCfg)
	} else {
		cfg = cfg.MergeWithDefaults(config.Config{})
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// toEngineWeights converts config weights to engine weights.
func toEngineWeights(w *config.WeightsConfig) *matching.Weights {
	if w == nil {
		return nil
	}
	return &matching.Weights{
		Skills:         w.Skills,
		Experience:     w.Experience,
		Certifications: w.Certifications,
		Education:      w.Education,
	}
}
