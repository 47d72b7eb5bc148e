package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/documents"
	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/types"
)

// maxUploadBytes caps resume uploads at 10 MB.
const maxUploadBytes = 10 << 20

// scoreConcurrency bounds parallel scoring during a match run.
const scoreConcurrency = 4

// handleUploadResume accepts a multipart resume upload, extracts its text,
// structures it, and stores both raw text and profile.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authedUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read upload")
		return
	}

	text, err := documents.ExtractText(header.Filename, data)
	if err != nil {
		if _, ok := err.(*documents.ErrUnsupportedFormat); ok {
			s.errorResponse(w, http.StatusUnsupportedMediaType, err.Error())
			return
		}
		s.errorResponse(w, http.StatusUnprocessableEntity, fmt.Sprintf("failed to extract text: %v", err))
		return
	}

	text = documents.CleanText(text)
	if strings.TrimSpace(text) == "" {
		s.errorResponse(w, http.StatusUnprocessableEntity, "document contains no extractable text")
		return
	}

	profile, err := s.extractor.ExtractResume(r.Context(), text)
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, fmt.Sprintf("failed to structure resume: %v", err))
		return
	}

	id, err := s.db.CreateResume(r.Context(), userID, header.Filename, text, profile)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to store resume")
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"id":       id,
		"filename": header.Filename,
		"profile":  profile,
	})
}

// handleListResumes returns the caller's resumes without raw text.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authedUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	resumes, err := s.db.ListResumesByUser(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list resumes")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"resumes": resumes})
}

// handleGetResume returns one resume, raw text included.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authedUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	resume, err := s.loadOwnedResume(r.Context(), r.PathValue("id"), userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, resume)
}

// handleDeleteResume deletes one of the caller's resumes.
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authedUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid resume id")
		return
	}

	if err := s.db.DeleteResume(r.Context(), id, userID); err != nil {
		s.errorResponse(w, http.StatusNotFound, fmt.Sprintf("resume not found: %s", id))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleCreateJob creates a job from inline description text or by fetching
// a posting URL.
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authedUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	text := req.Text
	sourceURL := ""
	if req.URL != "" {
		posting, err := s.fetcher.JobPosting(r.Context(), req.URL)
		if err != nil {
			s.errorResponse(w, http.StatusBadGateway, fmt.Sprintf("failed to fetch posting: %v", err))
			return
		}
		text = posting.Text
		sourceURL = req.URL
	}

	if strings.TrimSpace(text) == "" {
		s.errorResponse(w, http.StatusUnprocessableEntity, "job posting contains no text")
		return
	}

	requirements, err := s.extractor.ExtractJob(r.Context(), text)
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, fmt.Sprintf("failed to structure job: %v", err))
		return
	}

	id, err := s.db.CreateJob(r.Context(), userID, req.Title, sourceURL, text, requirements)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to store job")
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"id":           id,
		"title":        req.Title,
		"source_url":   sourceURL,
		"requirements": requirements,
	})
}

// handleListJobs returns the caller's jobs.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authedUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	jobs, err := s.db.ListJobsByUser(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list jobs")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"jobs": jobs})
}

// handleGetJob returns one job.
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authedUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	job, err := s.loadOwnedJob(r.Context(), r.PathValue("id"), userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, job)
}

// handleUpdateJob replaces a job's title and, when new text or a new URL is
// supplied, re-extracts its requirements.
func (s *Server) handleUpdateJob(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authedUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.UpdateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	job, err := s.loadOwnedJob(r.Context(), r.PathValue("id"), userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	title := job.Title
	if req.Title != "" {
		title = req.Title
	}

	text := job.RawText
	sourceURL := job.SourceURL
	requirements := any(job.Requirements)
	if req.Text != "" || req.URL != "" {
		text = req.Text
		sourceURL = ""
		if req.URL != "" {
			posting, err := s.fetcher.JobPosting(r.Context(), req.URL)
			if err != nil {
				s.errorResponse(w, http.StatusBadGateway, fmt.Sprintf("failed to fetch posting: %v", err))
				return
			}
			text = posting.Text
			sourceURL = req.URL
		}
		if strings.TrimSpace(text) == "" {
			s.errorResponse(w, http.StatusUnprocessableEntity, "job posting contains no text")
			return
		}
		extracted, err := s.extractor.ExtractJob(r.Context(), text)
		if err != nil {
			s.errorResponse(w, http.StatusUnprocessableEntity, fmt.Sprintf("failed to structure job: %v", err))
			return
		}
		requirements = extracted
	}

	if err := s.db.UpdateJob(r.Context(), job.ID, userID, title, sourceURL, text, requirements); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to update job")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"id":           job.ID,
		"title":        title,
		"source_url":   sourceURL,
		"requirements": requirements,
	})
}

// handleDeleteJob deletes one of the caller's jobs.
func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authedUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid job id")
		return
	}

	if err := s.db.DeleteJob(r.Context(), id, userID); err != nil {
		s.errorResponse(w, http.StatusNotFound, fmt.Sprintf("job not found: %s", id))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleMatch scores all of the caller's resumes against one job, persists
// the results, and returns them sorted by overall score, highest first.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authedUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.MatchJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	job, err := s.loadOwnedJob(r.Context(), req.JobID.String(), userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	jobProfile, err := jobToProfile(job, s.weights)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "stored job requirements are corrupt")
		return
	}

	resumes, err := s.db.ListResumesByUser(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list resumes")
		return
	}
	if len(resumes) == 0 {
		s.errorResponse(w, http.StatusUnprocessableEntity, "no resumes uploaded")
		return
	}

	profiles := make([]matching.ResumeProfile, 0, len(resumes))
	for i := range resumes {
		profile, err := resumeToProfile(&resumes[i])
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "stored resume profile is corrupt")
			return
		}
		profiles = append(profiles, profile)
	}

	ranked := make([]matching.RankedResume, len(profiles))
	g, ctx := errgroup.WithContext(r.Context())
	g.SetLimit(scoreConcurrency)
	for i := range profiles {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ranked[i] = s.engine.RankResumes(jobProfile, profiles[i:i+1])[0]
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "match run canceled")
		return
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Result.OverallScore > ranked[j].Result.OverallScore
	})

	for _, entry := range ranked {
		if _, err := s.db.SaveMatchResult(r.Context(), userID, entry.ResumeID, job.ID, entry.Result.OverallScore, entry.Result); err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "failed to store match results")
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"job_id":  job.ID,
		"title":   job.Title,
		"matches": ranked,
	})
}

// handleScore scores one resume/job field pair directly without touching
// storage. When no weights are supplied the server's configured defaults
// apply.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req matching.MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Weights == nil {
		req.Weights = s.weights
	}

	s.jsonResponse(w, http.StatusOK, s.engine.Score(&req))
}

// handleGap runs a skill gap analysis between a stored resume and job.
func (s *Server) handleGap(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authedUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.GapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	resume, err := s.loadOwnedResume(r.Context(), req.ResumeID.String(), userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	job, err := s.loadOwnedJob(r.Context(), req.JobID.String(), userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	resumeProfile, err := resumeToProfile(resume)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "stored resume profile is corrupt")
		return
	}
	jobProfile, err := jobToProfile(job, nil)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "stored job requirements are corrupt")
		return
	}

	gap := s.engine.AnalyzeSkillGap(resumeProfile.Skills, jobProfile.Skills)
	s.jsonResponse(w, http.StatusOK, gap)
}

// handleListJobMatches returns stored match results for one job, best first.
func (s *Server) handleListJobMatches(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authedUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	job, err := s.loadOwnedJob(r.Context(), r.PathValue("id"), userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	matches, err := s.db.ListMatchesByJob(r.Context(), job.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list matches")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"matches": matches})
}

// handleListResumeMatches returns stored match results for one resume.
func (s *Server) handleListResumeMatches(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authedUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	resume, err := s.loadOwnedResume(r.Context(), r.PathValue("id"), userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	matches, err := s.db.ListMatchesByResume(r.Context(), resume.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list matches")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"matches": matches})
}

// loadOwnedResume parses the ID, loads the resume, and enforces ownership.
func (s *Server) loadOwnedResume(ctx context.Context, rawID string, userID uuid.UUID) (*db.Resume, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, &ErrValidation{Field: "id", Message: "invalid resume id"}
	}

	resume, err := s.db.GetResume(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load resume: %w", err)
	}
	if resume == nil {
		return nil, &ErrNotFound{Resource: "resume", ID: id}
	}
	if resume.UserID != userID {
		return nil, &ErrForbidden{Resource: "resume"}
	}
	return resume, nil
}

// loadOwnedJob parses the ID, loads the job, and enforces ownership.
func (s *Server) loadOwnedJob(ctx context.Context, rawID string, userID uuid.UUID) (*db.Job, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, &ErrValidation{Field: "id", Message: "invalid job id"}
	}

	job, err := s.db.GetJob(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load job: %w", err)
	}
	if job == nil {
		return nil, &ErrNotFound{Resource: "job", ID: id}
	}
	if job.UserID != userID {
		return nil, &ErrForbidden{Resource: "job"}
	}
	return job, nil
}

// resumeToProfile unmarshals a stored resume profile into engine input.
func resumeToProfile(resume *db.Resume) (matching.ResumeProfile, error) {
	var stored extraction.ResumeProfile
	if len(resume.Profile) > 0 {
		if err := json.Unmarshal(resume.Profile, &stored); err != nil {
			return matching.ResumeProfile{}, fmt.Errorf("failed to decode resume profile: %w", err)
		}
	}
	return matching.ResumeProfile{
		ID:              resume.ID,
		Filename:        resume.Filename,
		Skills:          stored.Skills,
		ExperienceYears: int(stored.ExperienceYears),
		EducationLevel:  stored.HighestEducationLevel,
		Major:           stored.Major,
	}, nil
}

// jobToProfile unmarshals stored job requirements into engine input.
func jobToProfile(job *db.Job, weights *matching.Weights) (matching.JobProfile, error) {
	var stored extraction.JobRequirements
	if len(job.Requirements) > 0 {
		if err := json.Unmarshal(job.Requirements, &stored); err != nil {
			return matching.JobProfile{}, fmt.Errorf("failed to decode job requirements: %w", err)
		}
	}
	return matching.JobProfile{
		Skills:          stored.Skills,
		ExperienceYears: int(stored.RequiredExperienceYears),
		Certifications:  stored.RequiredCertifications,
		EducationLevel:  stored.RequiredEducationLevel,
		Major:           stored.RequiredMajor,
		Weights:         weights,
	}, nil
}
