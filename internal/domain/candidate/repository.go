package candidate

import "context"

// CandidateRepository defines data access methods for recruitment candidates.
type CandidateRepository interface {
	Create(ctx context.Context, c Candidate) (Candidate, error)
	GetByID(ctx context.Context, id string) (Candidate, error)
	GetByRecruiter(ctx context.Context, recruiterID string) ([]Candidate, error)
	GetAll(ctx context.Context) ([]Candidate, error)
	Update(ctx context.Context, c Candidate) error
	Delete(ctx context.Context, id string) error
}
