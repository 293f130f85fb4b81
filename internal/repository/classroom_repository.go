package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/advising-backend/internal/apperrors"
	"github.com/campushq/advising-backend/internal/model"
)

// ClassroomRepository handles classroom data access.
type ClassroomRepository struct {
	pool *pgxpool.Pool
}

// NewClassroomRepository creates a new ClassroomRepository.
func NewClassroomRepository(pool *pgxpool.Pool) *ClassroomRepository {
	return &ClassroomRepository{pool: pool}
}

// Create registers a new classroom.
func (r *ClassroomRepository) Create(ctx context.Context, c *model.Classroom) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO classrooms (building, room_no) VALUES ($1, $2)
		 RETURNING id`, c.Building, c.RoomNo,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return err
	}
	return nil
}

// GetByID retrieves a classroom by ID.
func (r *ClassroomRepository) GetByID(ctx context.Context, id int) (*model.Classroom, error) {
	c := &model.Classroom{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, building, room_no FROM classrooms WHERE id = $1`, id,
	).Scan(&c.ID, &c.Building, &c.RoomNo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

// List retrieves all classrooms ordered by building and room number.
func (r *ClassroomRepository) List(ctx context.Context) ([]model.Classroom, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, building, room_no FROM classrooms ORDER BY building, room_no`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classrooms []model.Classroom
	for rows.Next() {
		var c model.Classroom
		if err := rows.Scan(&c.ID, &c.Building, &c.RoomNo); err != nil {
			return nil, err
		}
		classrooms = append(classrooms, c)
	}
	return classrooms, rows.Err()
}

// Update edits a classroom.
func (r *ClassroomRepository) Update(ctx context.Context, c *model.Classroom) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE classrooms SET building = $1, room_no = $2 WHERE id = $3`,
		c.Building, c.RoomNo, c.ID)
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

// Delete removes a classroom unless an offering still references it.
func (r *ClassroomRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM classrooms WHERE id = $1`, id)
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
