package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateResume stores an uploaded resume with its extracted profile and
// returns the new ID. profile is marshaled into a JSONB column.
func (db *DB) CreateResume(ctx context.Context, userID uuid.UUID, filename, rawText string, profile any) (uuid.UUID, error) {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal resume profile: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO resumes (user_id, filename, raw_text, profile)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		userID, filename, rawText, profileJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create resume: %w", err)
	}
	return id, nil
}

// GetResume retrieves a resume by ID. Returns nil, nil when not found.
func (db *DB) GetResume(ctx context.Context, id uuid.UUID) (*Resume, error) {
	var resume Resume
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, filename, raw_text, profile, created_at
		 FROM resumes WHERE id = $1`,
		id,
	).Scan(&resume.ID, &resume.UserID, &resume.Filename, &resume.RawText, &resume.Profile, &resume.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return &resume, nil
}

// ListResumesByUser retrieves a user's resumes, newest first. Raw text is
// omitted from listings.
func (db *DB) ListResumesByUser(ctx context.Context, userID uuid.UUID) ([]Resume, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, filename, profile, created_at
		 FROM resumes WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var resumes []Resume
	for rows.Next() {
		var resume Resume
		if err := rows.Scan(&resume.ID, &resume.UserID, &resume.Filename, &resume.Profile, &resume.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		resumes = append(resumes, resume)
	}
	return resumes, nil
}

// DeleteResume deletes a resume owned by userID.
func (db *DB) DeleteResume(ctx context.Context, id, userID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM resumes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("resume not found: %s", id)
	}
	return nil
}
