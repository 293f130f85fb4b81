package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/advising-backend/internal/apperrors"
	"github.com/campushq/advising-backend/internal/model"
)

// StudentRepository handles student data access.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

// GetByID retrieves a student by ID.
func (r *StudentRepository) GetByID(ctx context.Context, id int) (*model.Student, error) {
	s := &model.Student{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, student_no, name, email, password_hash, department_id, created_at, updated_at
		 FROM students WHERE id = $1`, id,
	).Scan(&s.ID, &s.StudentNo, &s.Name, &s.Email, &s.PasswordHash, &s.DepartmentID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, err
	}
	return s, nil
}

// GetByStudentNo retrieves a student by their unique student number.
func (r *StudentRepository) GetByStudentNo(ctx context.Context, studentNo string) (*model.Student, error) {
	s := &model.Student{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, student_no, name, email, password_hash, department_id, created_at, updated_at
		 FROM students WHERE student_no = $1`, studentNo,
	).Scan(&s.ID, &s.StudentNo, &s.Name, &s.Email, &s.PasswordHash, &s.DepartmentID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, err
	}
	return s, nil
}

// ListPaginated retrieves students with pagination and optional department filter.
func (r *StudentRepository) ListPaginated(ctx context.Context, departmentID *int, limit, offset int) ([]model.Student, int, error) {
	countQuery := `SELECT COUNT(*) FROM students`
	var countArgs []any
	if departmentID != nil {
		countQuery += ` WHERE department_id = $1`
		countArgs = append(countArgs, *departmentID)
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, student_no, name, email, password_hash, department_id, created_at, updated_at FROM students`
	var args []any
	argIdx := 1

	if departmentID != nil {
		query += ` WHERE department_id = $1`
		args = append(args, *departmentID)
		argIdx++
	}

	query += ` ORDER BY name LIMIT $` + strconv.Itoa(argIdx) + ` OFFSET $` + strconv.Itoa(argIdx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(&s.ID, &s.StudentNo, &s.Name, &s.Email, &s.PasswordHash, &s.DepartmentID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, 0, err
		}
		students = append(students, s)
	}
	return students, total, rows.Err()
}

// Create inserts a new student account.
func (r *StudentRepository) Create(ctx context.Context, s *model.Student) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO students (student_no, name, email, password_hash, department_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		s.StudentNo, s.Name, s.Email, s.PasswordHash, s.DepartmentID,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return err
	}
	return nil
}

// Update edits a student account. An empty passwordHash keeps the
// existing one.
func (r *StudentRepository) Update(ctx context.Context, s *model.Student) error {
	var tag pgconn.CommandTag
	var err error
	if s.PasswordHash != "" {
		tag, err = r.pool.Exec(ctx,
			`UPDATE students
			 SET student_no = $1, name = $2, email = $3, password_hash = $4, department_id = $5, updated_at = now()
			 WHERE id = $6`,
			s.StudentNo, s.Name, s.Email, s.PasswordHash, s.DepartmentID, s.ID)
	} else {
		tag, err = r.pool.Exec(ctx,
			`UPDATE students
			 SET student_no = $1, name = $2, email = $3, department_id = $4, updated_at = now()
			 WHERE id = $5`,
			s.StudentNo, s.Name, s.Email, s.DepartmentID, s.ID)
	}
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// Delete removes a student unless enrollment history still references them.
func (r *StudentRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.ErrDependencyExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}
