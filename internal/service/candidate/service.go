package candidate

import (
	"context"

	"github.com/workflowhq/workforce-backend-go/internal/domain/candidate"
)

type CandidateServiceImpl struct {
	candidateRepo candidate.CandidateRepository
}

func NewCandidateService(candidateRepo candidate.CandidateRepository) candidate.CandidateService {
	return &CandidateServiceImpl{
		candidateRepo: candidateRepo,
	}
}

func (s *CandidateServiceImpl) Create(ctx context.Context, req candidate.CreateCandidateRequest) (candidate.CandidateResponse, error) {
	if err := req.Validate(); err != nil {
		return candidate.CandidateResponse{}, err
	}

	c := candidate.Candidate{
		Name:            req.Name,
		Email:           req.Email,
		Role:            req.Role,
		RecruiterID:     req.RecruiterID,
		Status:          candidate.StatusApplied,
		ATSScore:        req.ATSScore,
		Experience:      req.Experience,
		ResumeURL:       req.ResumeURL,
		MatchedKeywords: req.Keywords,
	}

	created, err := s.candidateRepo.Create(ctx, c)
	if err != nil {
		return candidate.CandidateResponse{}, err
	}

	return mapToCandidateResponse(created), nil
}

func (s *CandidateServiceImpl) GetByID(ctx context.Context, id string) (candidate.CandidateResponse, error) {
	c, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return candidate.CandidateResponse{}, err
	}
	return mapToCandidateResponse(c), nil
}

func (s *CandidateServiceImpl) GetByRecruiter(ctx context.Context, recruiterID string) ([]candidate.CandidateResponse, error) {
	candidates, err := s.candidateRepo.GetByRecruiter(ctx, recruiterID)
	if err != nil {
		return nil, err
	}
	return mapToCandidateResponses(candidates), nil
}

func (s *CandidateServiceImpl) GetAll(ctx context.Context) ([]candidate.CandidateResponse, error) {
	candidates, err := s.candidateRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToCandidateResponses(candidates), nil
}

func (s *CandidateServiceImpl) Update(ctx context.Context, req candidate.UpdateCandidateRequest) (candidate.CandidateResponse, error) {
	if err := req.Validate(); err != nil {
		return candidate.CandidateResponse{}, err
	}

	c, err := s.candidateRepo.GetByID(ctx, req.ID)
	if err != nil {
		return candidate.CandidateResponse{}, err
	}

	if req.Status != nil {
		c.Status = candidate.Status(*req.Status)
	}
	if req.ATSScore != nil {
		c.ATSScore = req.ATSScore
	}
	if req.Experience != nil {
		c.Experience = req.Experience
	}
	if req.ResumeURL != nil {
		c.ResumeURL = req.ResumeURL
	}
	if req.Keywords != nil {
		c.MatchedKeywords = req.Keywords
	}

	if err := s.candidateRepo.Update(ctx, c); err != nil {
		return candidate.CandidateResponse{}, err
	}

	return mapToCandidateResponse(c), nil
}

func (s *CandidateServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.candidateRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.candidateRepo.Delete(ctx, id)
}

func mapToCandidateResponse(c candidate.Candidate) candidate.CandidateResponse {
	return candidate.CandidateResponse{
		ID:              c.ID,
		Name:            c.Name,
		Email:           c.Email,
		Role:            c.Role,
		RecruiterID:     c.RecruiterID,
		Status:          string(c.Status),
		ATSScore:        c.ATSScore,
		Experience:      c.Experience,
		ResumeURL:       c.ResumeURL,
		MatchedKeywords: c.MatchedKeywords,
	}
}

func mapToCandidateResponses(candidates []candidate.Candidate) []candidate.CandidateResponse {
	result := make([]candidate.CandidateResponse, 0, len(candidates))
	for _, c := range candidates {
		result = append(result, mapToCandidateResponse(c))
	}
	return result
}
