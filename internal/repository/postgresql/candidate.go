package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/workflowhq/workforce-backend-go/internal/domain/candidate"
	"github.com/workflowhq/workforce-backend-go/internal/pkg/database"
)

type candidateRepository struct {
	db *database.DB
}

// NewCandidateRepository creates a new candidate repository
func NewCandidateRepository(db *database.DB) candidate.CandidateRepository {
	return &candidateRepository{db: db}
}

const candidateColumns = `
	id, name, email, role, recruiter_id, status, ats_score,
	experience, resume_url, matched_keywords, created_at, updated_at`

func scanCandidate(row pgx.Row) (candidate.Candidate, error) {
	var c candidate.Candidate
	var status string

	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Role, &c.RecruiterID, &status, &c.ATSScore,
		&c.Experience, &c.ResumeURL, &c.MatchedKeywords, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return candidate.Candidate{}, err
	}

	c.Status = candidate.Status(status)
	return c, nil
}

func (r *candidateRepository) queryCandidates(ctx context.Context, query string, args ...interface{}) ([]candidate.Candidate, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	var candidates []candidate.Candidate
	for rows.Next() {
		c, scanErr := scanCandidate(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", scanErr)
		}
		candidates = append(candidates, c)
	}

	return candidates, nil
}

func (r *candidateRepository) Create(ctx context.Context, c candidate.Candidate) (candidate.Candidate, error) {
	q := GetQuerier(ctx, r.db)

	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	query := `
		INSERT INTO candidates (
			id, name, email, role, recruiter_id, status, ats_score,
			experience, resume_url, matched_keywords, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := q.Exec(ctx, query,
		c.ID, c.Name, c.Email, c.Role, c.RecruiterID, string(c.Status), c.ATSScore,
		c.Experience, c.ResumeURL, c.MatchedKeywords, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return candidate.Candidate{}, candidate.ErrCandidateExists
		}
		return candidate.Candidate{}, fmt.Errorf("failed to create candidate: %w", err)
	}

	return c, nil
}

func (r *candidateRepository) GetByID(ctx context.Context, id string) (candidate.Candidate, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM candidates WHERE id = $1`, candidateColumns)

	c, err := scanCandidate(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return candidate.Candidate{}, candidate.ErrCandidateNotFound
		}
		return candidate.Candidate{}, fmt.Errorf("failed to get candidate: %w", err)
	}

	return c, nil
}

func (r *candidateRepository) GetByRecruiter(ctx context.Context, recruiterID string) ([]candidate.Candidate, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM candidates
		WHERE recruiter_id = $1
		ORDER BY created_at DESC
	`, candidateColumns)

	return r.queryCandidates(ctx, query, recruiterID)
}

func (r *candidateRepository) GetAll(ctx context.Context) ([]candidate.Candidate, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM candidates
		ORDER BY created_at DESC
	`, candidateColumns)

	return r.queryCandidates(ctx, query)
}

func (r *candidateRepository) Update(ctx context.Context, c candidate.Candidate) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE candidates SET
			status = $2, ats_score = $3, experience = $4,
			resume_url = $5, matched_keywords = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := q.Exec(ctx, query,
		c.ID, string(c.Status), c.ATSScore, c.Experience,
		c.ResumeURL, c.MatchedKeywords, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to update candidate: %w", err)
	}
	if result.RowsAffected() == 0 {
		return candidate.ErrCandidateNotFound
	}

	return nil
}

func (r *candidateRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}
	if result.RowsAffected() == 0 {
		return candidate.ErrCandidateNotFound
	}

	return nil
}
