package db

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestUser(t *testing.T, db *DB, ctx context.Context) uuid.UUID {
	t.Helper()
	email := "test-" + uuid.New().String() + "@example.com"
	userID, err := db.CreateUser(ctx, "Test User", email, "$2a$12$fakehash")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.DeleteUser(ctx, userID) })
	return userID
}

func TestIntegration_UserLifecycle(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	email := "test-lifecycle-" + uuid.New().String() + "@example.com"
	userID, err := db.CreateUser(ctx, "Lifecycle User", email, "hash-1")
	require.NoError(t, err)
	defer func() { _ = db.DeleteUser(ctx, userID) }()

	user, err := db.GetUserByEmail(ctx, email)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "Lifecycle User", user.Name)
	assert.True(t, user.PasswordSet)

	require.NoError(t, db.UpdatePassword(ctx, userID, "hash-2"))
	user, err = db.GetUserByID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "hash-2", user.PasswordHash)

	missing, err := db.GetUserByEmail(ctx, "nonexistent-"+uuid.New().String()+"@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestIntegration_ResumeLifecycle(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()
	userID := createTestUser(t, db, ctx)

	profile := map[string]any{"skills": []string{"python", "go"}, "experience_years": 5}
	resumeID, err := db.CreateResume(ctx, userID, "resume.pdf", "raw resume text", profile)
	require.NoError(t, err)

	resume, err := db.GetResume(ctx, resumeID)
	require.NoError(t, err)
	require.NotNil(t, resume)
	assert.Equal(t, "resume.pdf", resume.Filename)
	assert.Equal(t, "raw resume text", resume.RawText)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(resume.Profile, &decoded))
	assert.Equal(t, 5.0, decoded["experience_years"])

	listed, err := db.ListResumesByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Empty(t, listed[0].RawText)

	require.NoError(t, db.DeleteResume(ctx, resumeID, userID))
	gone, err := db.GetResume(ctx, resumeID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestIntegration_DeleteResume_WrongOwner(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()
	owner := createTestUser(t, db, ctx)
	other := createTestUser(t, db, ctx)

	resumeID, err := db.CreateResume(ctx, owner, "resume.pdf", "text", nil)
	require.NoError(t, err)

	err = db.DeleteResume(ctx, resumeID, other)
	assert.Error(t, err)

	still, err := db.GetResume(ctx, resumeID)
	require.NoError(t, err)
	assert.NotNil(t, still)
}

func TestIntegration_JobLifecycle(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()
	userID := createTestUser(t, db, ctx)

	reqs := map[string]any{"skills": []string{"go", "kubernetes"}, "required_experience_years": 3}
	jobID, err := db.CreateJob(ctx, userID, "Backend Engineer", "https://example.com/job", "posting text", reqs)
	require.NoError(t, err)

	job, err := db.GetJob(ctx, jobID)
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, "Backend Engineer", job.Title)
	assert.Equal(t, "https://example.com/job", job.SourceURL)

	listed, err := db.ListJobsByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	require.NoError(t, db.DeleteJob(ctx, jobID, userID))
}

func TestIntegration_MatchResults_UpsertAndRanking(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()
	userID := createTestUser(t, db, ctx)

	jobID, err := db.CreateJob(ctx, userID, "Engineer", "", "text", nil)
	require.NoError(t, err)

	weak, err := db.CreateResume(ctx, userID, "weak.pdf", "", nil)
	require.NoError(t, err)
	strong, err := db.CreateResume(ctx, userID, "strong.pdf", "", nil)
	require.NoError(t, err)

	_, err = db.SaveMatchResult(ctx, userID, weak, jobID, 40.0, map[string]any{"overall_score": 40.0})
	require.NoError(t, err)
	_, err = db.SaveMatchResult(ctx, userID, strong, jobID, 85.0, map[string]any{"overall_score": 85.0})
	require.NoError(t, err)

	// Rescoring the same pair overwrites instead of duplicating.
	recordID, err := db.SaveMatchResult(ctx, userID, weak, jobID, 45.0, map[string]any{"overall_score": 45.0})
	require.NoError(t, err)

	record, err := db.GetMatchResult(ctx, recordID)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, 45.0, record.OverallScore)

	ranked, err := db.ListMatchesByJob(ctx, jobID)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, strong, ranked[0].ResumeID)
	assert.Equal(t, weak, ranked[1].ResumeID)

	byResume, err := db.ListMatchesByResume(ctx, weak)
	require.NoError(t, err)
	require.Len(t, byResume, 1)
}
