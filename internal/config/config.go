// Package config provides configuration loading and validation for the
// match service and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// DefaultPort is the HTTP port the server binds when none is configured.
const DefaultPort = 8080

// WeightsConfig overrides the default dimension weights of the match engine.
// A nil WeightsConfig means defaults.
type WeightsConfig struct {
	Skills         float64 `json:"skills"`
	Experience     float64 `json:"experience"`
	Certifications float64 `json:"certifications"`
	Education      float64 `json:"education"`
}

// Config represents the application configuration. Values can come from a
// JSON file, environment variables, or CLI flags; missing values use
// defaults.
type Config struct {
	Port        int    `json:"port,omitempty"`         // HTTP server port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key

	SkillsDBPath string `json:"skills_db_path,omitempty"` // Custom skills database JSON, empty for built-in

	Weights                     *WeightsConfig `json:"weights,omitempty"`
	ZeroRequiredSkillsFullScore bool           `json:"zero_required_skills_full_score,omitempty"` // Score 100 instead of 0 when a job lists no skills

	Verbose bool `json:"verbose,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns a Config populated from environment variables. Unset
// variables leave zero values, so the result merges cleanly under a file or
// flag config.
func FromEnv() (*Config, error) {
	cfg := &Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		APIKey:       os.Getenv("GEMINI_API_KEY"),
		SkillsDBPath: os.Getenv("SKILLS_DB_PATH"),
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}

	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}

	if c.SkillsDBPath != "" {
		if _, err := os.Stat(c.SkillsDBPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: skills database file not found: %s", c.SkillsDBPath)
		}
	}

	if c.Weights != nil {
		for name, w := range map[string]float64{
			"skills":         c.Weights.Skills,
			"experience":     c.Weights.Experience,
			"certifications": c.Weights.Certifications,
			"education":      c.Weights.Education,
		} {
			if w < 0 {
				return fmt.Errorf("config error: weight '%s' must be non-negative", name)
			}
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. Bool fields are not merged; flags always win for those.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		if defaults.Port != 0 {
			result.Port = defaults.Port
		} else {
			result.Port = DefaultPort
		}
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.SkillsDBPath == "" {
		result.SkillsDBPath = defaults.SkillsDBPath
	}
	if result.Weights == nil {
		result.Weights = defaults.Weights
	}

	return result
}
