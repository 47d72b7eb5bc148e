package db

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// User represents an account that owns resumes and jobs.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	PasswordSet  bool      `json:"password_set"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Resume represents an uploaded resume and its extracted profile.
type Resume struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Filename  string          `json:"filename"`
	RawText   string          `json:"raw_text,omitempty"`
	Profile   json.RawMessage `json:"profile,omitempty"` // extraction.ResumeProfile as JSONB
	CreatedAt time.Time       `json:"created_at"`
}

// Job represents a stored job posting and its extracted requirements.
type Job struct {
	ID           uuid.UUID       `json:"id"`
	UserID       uuid.UUID       `json:"user_id"`
	Title        string          `json:"title"`
	SourceURL    string          `json:"source_url,omitempty"`
	RawText      string          `json:"raw_text,omitempty"`
	Requirements json.RawMessage `json:"requirements,omitempty"` // extraction.JobRequirements as JSONB
	CreatedAt    time.Time       `json:"created_at"`
}

// MatchRecord represents a persisted match scoring result.
type MatchRecord struct {
	ID           uuid.UUID       `json:"id"`
	UserID       uuid.UUID       `json:"user_id"`
	ResumeID     uuid.UUID       `json:"resume_id"`
	JobID        uuid.UUID       `json:"job_id"`
	OverallScore float64         `json:"overall_score"`
	Result       json.RawMessage `json:"result"` // matching.MatchResult as JSONB
	CreatedAt    time.Time       `json:"created_at"`
}
