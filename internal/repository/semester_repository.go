package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/advising-backend/internal/apperrors"
	"github.com/campushq/advising-backend/internal/model"
)

// SemesterRepository handles semester data access.
type SemesterRepository struct {
	pool *pgxpool.Pool
}

// NewSemesterRepository creates a new SemesterRepository.
func NewSemesterRepository(pool *pgxpool.Pool) *SemesterRepository {
	return &SemesterRepository{pool: pool}
}

// Create opens a new semester. Semesters are immutable once created.
func (r *SemesterRepository) Create(ctx context.Context, s *model.Semester) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO semesters (season, year) VALUES ($1, $2)
		 RETURNING id, created_at`, s.Season, s.Year,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return err
	}
	return nil
}

// GetByID retrieves a semester by ID.
func (r *SemesterRepository) GetByID(ctx context.Context, id int) (*model.Semester, error) {
	s := &model.Semester{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, season, year, created_at FROM semesters WHERE id = $1`, id,
	).Scan(&s.ID, &s.Season, &s.Year, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSemesterNotFound
		}
		return nil, err
	}
	return s, nil
}

// Current retrieves the most recently created semester, which is the
// active enrollment period.
func (r *SemesterRepository) Current(ctx context.Context) (*model.Semester, error) {
	s := &model.Semester{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, season, year, created_at
		 FROM semesters
		 ORDER BY created_at DESC, id DESC
		 LIMIT 1`,
	).Scan(&s.ID, &s.Season, &s.Year, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoSemester
		}
		return nil, err
	}
	return s, nil
}

// List retrieves all semesters, newest first.
func (r *SemesterRepository) List(ctx context.Context) ([]model.Semester, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, season, year, created_at
		 FROM semesters
		 ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var semesters []model.Semester
	for rows.Next() {
		var s model.Semester
		if err := rows.Scan(&s.ID, &s.Season, &s.Year, &s.CreatedAt); err != nil {
			return nil, err
		}
		semesters = append(semesters, s)
	}
	return semesters, rows.Err()
}
