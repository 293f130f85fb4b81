package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/advising-backend/internal/apperrors"
	"github.com/campushq/advising-backend/internal/model"
)

// FacultyRepository handles faculty data access.
type FacultyRepository struct {
	pool *pgxpool.Pool
}

// NewFacultyRepository creates a new FacultyRepository.
func NewFacultyRepository(pool *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{pool: pool}
}

// Create registers a faculty member.
func (r *FacultyRepository) Create(ctx context.Context, f *model.Faculty) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO faculty (department_id, name, email, password_hash)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		f.DepartmentID, f.Name, f.Email, f.PasswordHash,
	).Scan(&f.ID, &f.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return err
	}
	return nil
}

// GetByID retrieves a faculty member by ID.
func (r *FacultyRepository) GetByID(ctx context.Context, id int) (*model.Faculty, error) {
	f := &model.Faculty{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, department_id, name, email, password_hash, created_at
		 FROM faculty WHERE id = $1`, id,
	).Scan(&f.ID, &f.DepartmentID, &f.Name, &f.Email, &f.PasswordHash, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, err
	}
	return f, nil
}

// GetByEmail retrieves a faculty member by their login email.
func (r *FacultyRepository) GetByEmail(ctx context.Context, email string) (*model.Faculty, error) {
	f := &model.Faculty{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, department_id, name, email, password_hash, created_at
		 FROM faculty WHERE email = $1`, email,
	).Scan(&f.ID, &f.DepartmentID, &f.Name, &f.Email, &f.PasswordHash, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, err
	}
	return f, nil
}

// List retrieves faculty, optionally filtered by department.
func (r *FacultyRepository) List(ctx context.Context, departmentID *int) ([]model.Faculty, error) {
	query := `SELECT id, department_id, name, email, password_hash, created_at FROM faculty`
	var args []any
	if departmentID != nil {
		query += ` WHERE department_id = $1`
		args = append(args, *departmentID)
	}
	query += ` ORDER BY name`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []model.Faculty
	for rows.Next() {
		var f model.Faculty
		if err := rows.Scan(&f.ID, &f.DepartmentID, &f.Name, &f.Email, &f.PasswordHash, &f.CreatedAt); err != nil {
			return nil, err
		}
		members = append(members, f)
	}
	return members, rows.Err()
}

// Update edits a faculty member. An empty passwordHash keeps the
// existing one.
func (r *FacultyRepository) Update(ctx context.Context, f *model.Faculty) error {
	var tag pgconn.CommandTag
	var err error
	if f.PasswordHash != "" {
		tag, err = r.pool.Exec(ctx,
			`UPDATE faculty SET department_id = $1, name = $2, email = $3, password_hash = $4
			 WHERE id = $5`,
			f.DepartmentID, f.Name, f.Email, f.PasswordHash, f.ID)
	} else {
		tag, err = r.pool.Exec(ctx,
			`UPDATE faculty SET department_id = $1, name = $2, email = $3
			 WHERE id = $4`,
			f.DepartmentID, f.Name, f.Email, f.ID)
	}
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}
	return nil
}

// Delete removes a faculty member unless an offering still references them.
func (r *FacultyRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM faculty WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.ErrDependencyExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}
	return nil
}
