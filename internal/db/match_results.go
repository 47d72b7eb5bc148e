package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveMatchResult persists a scoring result. Repeated scoring of the same
// resume/job pair overwrites the previous record.
func (db *DB) SaveMatchResult(ctx context.Context, userID, resumeID, jobID uuid.UUID, overallScore float64, result any) (uuid.UUID, error) {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal match result: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO match_results (user_id, resume_id, job_id, overall_score, result)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (resume_id, job_id)
		 DO UPDATE SET overall_score = $4, result = $5, created_at = NOW()
		 RETURNING id`,
		userID, resumeID, jobID, overallScore, resultJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save match result: %w", err)
	}
	return id, nil
}

// GetMatchResult retrieves a match record by ID. Returns nil, nil when not
// found.
func (db *DB) GetMatchResult(ctx context.Context, id uuid.UUID) (*MatchRecord, error) {
	var record MatchRecord
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, resume_id, job_id, overall_score, result, created_at
		 FROM match_results WHERE id = $1`,
		id,
	).Scan(&record.ID, &record.UserID, &record.ResumeID, &record.JobID, &record.OverallScore, &record.Result, &record.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get match result: %w", err)
	}
	return &record, nil
}

// ListMatchesByJob retrieves all match records for a job, best score first.
// This is the stored ranking of every resume scored against the job.
func (db *DB) ListMatchesByJob(ctx context.Context, jobID uuid.UUID) ([]MatchRecord, error) {
	return db.listMatches(ctx, `WHERE job_id = $1 ORDER BY overall_score DESC, created_at ASC`, jobID)
}

// ListMatchesByResume retrieves all match records for a resume, best score
// first.
func (db *DB) ListMatchesByResume(ctx context.Context, resumeID uuid.UUID) ([]MatchRecord, error) {
	return db.listMatches(ctx, `WHERE resume_id = $1 ORDER BY overall_score DESC, created_at ASC`, resumeID)
}

func (db *DB) listMatches(ctx context.Context, clause string, arg any) ([]MatchRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, resume_id, job_id, overall_score, result, created_at
		 FROM match_results `+clause,
		arg,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list match results: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		var record MatchRecord
		if err := rows.Scan(&record.ID, &record.UserID, &record.ResumeID, &record.JobID, &record.OverallScore, &record.Result, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match result: %w", err)
		}
		records = append(records, record)
	}
	return records, nil
}
