package candidate

import "time"

// Candidate is a recruitment pipeline entry. ATSScore comes from an
// external scoring service and is stored as-is.
type Candidate struct {
	ID              string
	Name            string
	Email           string
	Role            string
	RecruiterID     string
	Status          Status
	ATSScore        *int
	Experience      *string
	ResumeURL       *string
	MatchedKeywords []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Status string

const (
	StatusApplied     Status = "Applied"
	StatusReview      Status = "Review"
	StatusShortlisted Status = "Shortlisted"
	StatusRejected    Status = "Rejected"
)
