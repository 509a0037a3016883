package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/workflowhq/workforce-backend-go/internal/domain/candidate"
	"github.com/workflowhq/workforce-backend-go/internal/handler/http/middleware"
	"github.com/workflowhq/workforce-backend-go/internal/handler/http/response"
)

type CandidateHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	GetMine(w http.ResponseWriter, r *http.Request)
	GetAll(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type CandidateHandlerImpl struct {
	candidateService candidate.CandidateService
}

func NewCandidateHandler(candidateService candidate.CandidateService) CandidateHandler {
	return &CandidateHandlerImpl{candidateService: candidateService}
}

// Create implements CandidateHandler.
func (h *CandidateHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req candidate.CreateCandidateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateCandidate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.RecruiterID = middleware.EmployeeID(r)

	result, err := h.candidateService.Create(r.Context(), req)
	if err != nil {
		slog.Error("CreateCandidate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Candidate created", "candidate_id", result.ID)
	response.Created(w, "Candidate created", result)
}

// GetByID implements CandidateHandler.
func (h *CandidateHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	result, err := h.candidateService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMine returns the candidates the authenticated recruiter manages.
func (h *CandidateHandlerImpl) GetMine(w http.ResponseWriter, r *http.Request) {
	result, err := h.candidateService.GetByRecruiter(r.Context(), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetAll implements CandidateHandler.
func (h *CandidateHandlerImpl) GetAll(w http.ResponseWriter, r *http.Request) {
	result, err := h.candidateService.GetAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements CandidateHandler.
func (h *CandidateHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req candidate.UpdateCandidateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateCandidate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.candidateService.Update(r.Context(), req)
	if err != nil {
		slog.Error("UpdateCandidate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Candidate updated", result)
}

// Delete implements CandidateHandler.
func (h *CandidateHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.candidateService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("DeleteCandidate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Candidate deleted", nil)
}
