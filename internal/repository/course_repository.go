package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/advising-backend/internal/apperrors"
	"github.com/campushq/advising-backend/internal/model"
)

// CourseRepository handles catalog course data access.
type CourseRepository struct {
	pool *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

// Create adds a course to the catalog.
func (r *CourseRepository) Create(ctx context.Context, c *model.Course) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO courses (department_id, course_code, title, credits)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`, c.DepartmentID, c.CourseCode, c.Title, c.Credits,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return err
	}
	return nil
}

// GetByID retrieves a course by ID.
func (r *CourseRepository) GetByID(ctx context.Context, id int) (*model.Course, error) {
	c := &model.Course{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, department_id, course_code, title, credits
		 FROM courses WHERE id = $1`, id,
	).Scan(&c.ID, &c.DepartmentID, &c.CourseCode, &c.Title, &c.Credits)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

// List retrieves courses, optionally filtered by department.
func (r *CourseRepository) List(ctx context.Context, departmentID *int) ([]model.Course, error) {
	query := `SELECT id, department_id, course_code, title, credits FROM courses`
	var args []any
	if departmentID != nil {
		query += ` WHERE department_id = $1`
		args = append(args, *departmentID)
	}
	query += ` ORDER BY course_code`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(&c.ID, &c.DepartmentID, &c.CourseCode, &c.Title, &c.Credits); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

// Update edits a catalog course.
func (r *CourseRepository) Update(ctx context.Context, c *model.Course) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE courses SET department_id = $1, course_code = $2, title = $3, credits = $4
		 WHERE id = $5`,
		c.DepartmentID, c.CourseCode, c.Title, c.Credits, c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete removes a course unless an offering still references it.
func (r *CourseRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.ErrDependencyExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
