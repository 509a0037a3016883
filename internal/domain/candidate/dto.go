package candidate

import (
	"github.com/workflowhq/workforce-backend-go/internal/pkg/validator"
)

type CreateCandidateRequest struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	RecruiterID string   `json:"-"`
	Experience  *string  `json:"experience,omitempty"`
	ResumeURL   *string  `json:"resume_url,omitempty"`
	ATSScore    *int     `json:"ats_score,omitempty"`
	Keywords    []string `json:"matched_keywords,omitempty"`
}

func (r *CreateCandidateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "is required"})
	}
	if r.ATSScore != nil && (*r.ATSScore < 0 || *r.ATSScore > 100) {
		errs = append(errs, validator.ValidationError{Field: "ats_score", Message: "must be between 0 and 100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateCandidateRequest struct {
	ID         string
	Status     *string  `json:"status,omitempty"`
	ATSScore   *int     `json:"ats_score,omitempty"`
	Experience *string  `json:"experience,omitempty"`
	ResumeURL  *string  `json:"resume_url,omitempty"`
	Keywords   []string `json:"matched_keywords,omitempty"`
}

func (r *UpdateCandidateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{
		string(StatusApplied), string(StatusReview), string(StatusShortlisted), string(StatusRejected),
	}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be Applied, Review, Shortlisted or Rejected"})
	}
	if r.ATSScore != nil && (*r.ATSScore < 0 || *r.ATSScore > 100) {
		errs = append(errs, validator.ValidationError{Field: "ats_score", Message: "must be between 0 and 100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CandidateResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Role            string   `json:"role"`
	RecruiterID     string   `json:"recruiter_id"`
	Status          string   `json:"status"`
	ATSScore        *int     `json:"ats_score,omitempty"`
	Experience      *string  `json:"experience,omitempty"`
	ResumeURL       *string  `json:"resume_url,omitempty"`
	MatchedKeywords []string `json:"matched_keywords,omitempty"`
}
