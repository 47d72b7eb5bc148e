package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateJob stores a job posting with its extracted requirements and returns
// the new ID. requirements is marshaled into a JSONB column.
func (db *DB) CreateJob(ctx context.Context, userID uuid.UUID, title, sourceURL, rawText string, requirements any) (uuid.UUID, error) {
	reqJSON, err := json.Marshal(requirements)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal job requirements: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO jobs (user_id, title, source_url, raw_text, requirements)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		userID, title, sourceURL, rawText, reqJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create job: %w", err)
	}
	return id, nil
}

// GetJob retrieves a job by ID. Returns nil, nil when not found.
func (db *DB) GetJob(ctx context.Context, id uuid.UUID) (*Job, error) {
	var job Job
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, title, COALESCE(source_url, ''), raw_text, requirements, created_at
		 FROM jobs WHERE id = $1`,
		id,
	).Scan(&job.ID, &job.UserID, &job.Title, &job.SourceURL, &job.RawText, &job.Requirements, &job.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return &job, nil
}

// ListJobsByUser retrieves a user's jobs, newest first. Raw text is omitted
// from listings.
func (db *DB) ListJobsByUser(ctx context.Context, userID uuid.UUID) ([]Job, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, title, COALESCE(source_url, ''), requirements, created_at
		 FROM jobs WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []Job
	for rows.Next() {
		var job Job
		if err := rows.Scan(&job.ID, &job.UserID, &job.Title, &job.SourceURL, &job.Requirements, &job.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// UpdateJob replaces a job's title, source, text, and requirements.
func (db *DB) UpdateJob(ctx context.Context, id, userID uuid.UUID, title, sourceURL, rawText string, requirements any) error {
	reqJSON, err := json.Marshal(requirements)
	if err != nil {
		return fmt.Errorf("failed to marshal job requirements: %w", err)
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE jobs SET title = $3, source_url = $4, raw_text = $5, requirements = $6
		 WHERE id = $1 AND user_id = $2`,
		id, userID, title, sourceURL, rawText, reqJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("job not found: %s", id)
	}
	return nil
}

// DeleteJob deletes a job owned by userID.
func (db *DB) DeleteJob(ctx context.Context, id, userID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM jobs WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("job not found: %s", id)
	}
	return nil
}
