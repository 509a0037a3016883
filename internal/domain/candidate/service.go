package candidate

import "context"

// CandidateService defines business logic for the recruitment pipeline.
type CandidateService interface {
	Create(ctx context.Context, req CreateCandidateRequest) (CandidateResponse, error)
	GetByID(ctx context.Context, id string) (CandidateResponse, error)
	GetByRecruiter(ctx context.Context, recruiterID string) ([]CandidateResponse, error)
	GetAll(ctx context.Context) ([]CandidateResponse, error)
	Update(ctx context.Context, req UpdateCandidateRequest) (CandidateResponse, error)
	Delete(ctx context.Context, id string) error
}
