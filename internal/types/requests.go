package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CreateJobRequest creates a job from inline text or from a posting URL.
// Exactly one of Text and URL must be set.
type CreateJobRequest struct {
	Title string `json:"title" validate:"required,min=1"`
	Text  string `json:"text,omitempty"`
	URL   string `json:"url,omitempty" validate:"omitempty,url"`
}

// Validate validates the CreateJobRequest using the validator, plus the
// text-or-URL exclusivity rule the tag syntax cannot express.
func (r *CreateJobRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	if (r.Text == "") == (r.URL == "") {
		return &FieldError{Field: "text", Message: "exactly one of text and url must be provided"}
	}
	return nil
}

// UpdateJobRequest replaces a job's content. All fields are optional; an
// empty request is rejected, and Text and URL stay mutually exclusive.
type UpdateJobRequest struct {
	Title string `json:"title,omitempty"`
	Text  string `json:"text,omitempty"`
	URL   string `json:"url,omitempty" validate:"omitempty,url"`
}

// Validate validates the UpdateJobRequest.
func (r *UpdateJobRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	if r.Title == "" && r.Text == "" && r.URL == "" {
		return &FieldError{Field: "title", Message: "at least one of title, text, and url must be provided"}
	}
	if r.Text != "" && r.URL != "" {
		return &FieldError{Field: "text", Message: "text and url are mutually exclusive"}
	}
	return nil
}

// MatchJobRequest scores all of the caller's resumes against one job.
type MatchJobRequest struct {
	JobID uuid.UUID `json:"job_id" validate:"required"`
}

// Validate validates the MatchJobRequest using the validator.
func (r *MatchJobRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// GapRequest asks for a skill gap analysis between a stored resume and job.
type GapRequest struct {
	ResumeID uuid.UUID `json:"resume_id" validate:"required"`
	JobID    uuid.UUID `json:"job_id" validate:"required"`
}

// Validate validates the GapRequest using the validator.
func (r *GapRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// FieldError is a single-field validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}
