package candidate

import "errors"

// Candidate domain errors
var (
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrCandidateExists   = errors.New("candidate email already registered")
)
