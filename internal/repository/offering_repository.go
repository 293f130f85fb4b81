package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/advising-backend/internal/apperrors"
	"github.com/campushq/advising-backend/internal/model"
)

const offeringDetailColumns = `
	o.id, o.semester_id, o.department_id, o.course_id, o.faculty_id, o.section,
	o.classroom_id, o.lab_room_id, o.class_time, o.lab_time,
	o.capacity, o.seats_remaining, o.created_at,
	c.course_code, c.title, c.credits, f.name,
	CONCAT(cr.building, ' ', cr.room_no),
	CASE WHEN lr.id IS NULL THEN NULL ELSE CONCAT(lr.building, ' ', lr.room_no) END`

const offeringDetailJoins = `
	FROM course_offerings o
	JOIN courses c ON o.course_id = c.id
	JOIN faculty f ON o.faculty_id = f.id
	JOIN classrooms cr ON o.classroom_id = cr.id
	LEFT JOIN classrooms lr ON o.lab_room_id = lr.id`

// OfferingRepository handles course offering data access, including the
// seat counter. The counter is only ever mutated through TryReserveSeat
// and ReleaseSeat.
type OfferingRepository struct {
	pool *pgxpool.Pool
}

// NewOfferingRepository creates a new OfferingRepository.
func NewOfferingRepository(pool *pgxpool.Pool) *OfferingRepository {
	return &OfferingRepository{pool: pool}
}

// Create publishes a new offering with a full complement of seats.
func (r *OfferingRepository) Create(ctx context.Context, o *model.CourseOffering) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO course_offerings
		 (semester_id, department_id, course_id, faculty_id, section,
		  classroom_id, lab_room_id, class_time, lab_time, capacity, seats_remaining)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
		 RETURNING id, seats_remaining, created_at`,
		o.SemesterID, o.DepartmentID, o.CourseID, o.FacultyID, o.Section,
		o.ClassroomID, o.LabRoomID, o.ClassTime, o.LabTime, o.Capacity,
	).Scan(&o.ID, &o.SeatsRemaining, &o.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return err
	}
	return nil
}

// GetByID retrieves a bare offering row.
func (r *OfferingRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.CourseOffering, error) {
	o := &model.CourseOffering{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, semester_id, department_id, course_id, faculty_id, section,
		        classroom_id, lab_room_id, class_time, lab_time,
		        capacity, seats_remaining, created_at
		 FROM course_offerings WHERE id = $1`, id,
	).Scan(&o.ID, &o.SemesterID, &o.DepartmentID, &o.CourseID, &o.FacultyID, &o.Section,
		&o.ClassroomID, &o.LabRoomID, &o.ClassTime, &o.LabTime,
		&o.Capacity, &o.SeatsRemaining, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOfferingNotFound
		}
		return nil, err
	}
	return o, nil
}

// GetDetail retrieves an offering with its descriptive catalog metadata.
func (r *OfferingRepository) GetDetail(ctx context.Context, id uuid.UUID) (*model.OfferingDetail, error) {
	d := &model.OfferingDetail{}
	err := r.pool.QueryRow(ctx,
		`SELECT`+offeringDetailColumns+offeringDetailJoins+` WHERE o.id = $1`, id,
	).Scan(&d.ID, &d.SemesterID, &d.DepartmentID, &d.CourseID, &d.FacultyID, &d.Section,
		&d.ClassroomID, &d.LabRoomID, &d.ClassTime, &d.LabTime,
		&d.Capacity, &d.SeatsRemaining, &d.CreatedAt,
		&d.CourseCode, &d.CourseTitle, &d.Credits, &d.FacultyName,
		&d.Classroom, &d.LabRoom)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOfferingNotFound
		}
		return nil, err
	}
	return d, nil
}

// ListPublished retrieves the published offering list for a semester and
// department, ordered for the advising screen.
func (r *OfferingRepository) ListPublished(ctx context.Context, semesterID, departmentID int) ([]model.OfferingDetail, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT`+offeringDetailColumns+offeringDetailJoins+`
		 WHERE o.semester_id = $1 AND o.department_id = $2
		 ORDER BY c.course_code, o.section`, semesterID, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOfferingDetails(rows)
}

// ListBySemesterFaculty retrieves the offerings taught by one faculty
// member in a semester.
func (r *OfferingRepository) ListBySemesterFaculty(ctx context.Context, semesterID, facultyID int) ([]model.OfferingDetail, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT`+offeringDetailColumns+offeringDetailJoins+`
		 WHERE o.semester_id = $1 AND o.faculty_id = $2
		 ORDER BY c.course_code, o.section`, semesterID, facultyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOfferingDetails(rows)
}

// Update edits offering metadata. Capacity and the seat counter are
// excluded so catalog edits can never break the enrollment invariant.
func (r *OfferingRepository) Update(ctx context.Context, id uuid.UUID, req *model.UpdateOfferingRequest) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE course_offerings
		 SET faculty_id = $1, classroom_id = $2, lab_room_id = $3, class_time = $4, lab_time = $5
		 WHERE id = $6`,
		req.FacultyID, req.ClassroomID, req.LabRoomID, req.ClassTime, req.LabTime, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrOfferingNotFound
	}
	return nil
}

// TryReserveSeat atomically claims one seat and reports the remaining
// count after the decrement. The conditional update is a single
// statement, so two racing callers can never both act on the same
// pre-decrement value: the row lock serializes them and the losing
// update matches zero rows once the counter hits zero.
func (r *OfferingRepository) TryReserveSeat(ctx context.Context, id uuid.UUID) (int, error) {
	var remaining int
	err := r.pool.QueryRow(ctx,
		`UPDATE course_offerings
		 SET seats_remaining = seats_remaining - 1
		 WHERE id = $1 AND seats_remaining > 0
		 RETURNING seats_remaining`, id,
	).Scan(&remaining)
	if err == nil {
		return remaining, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, err
	}

	// Zero rows: either the offering is gone or the seats are exhausted.
	var exists bool
	if err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM course_offerings WHERE id = $1)`, id,
	).Scan(&exists); err != nil {
		return 0, err
	}
	if !exists {
		return 0, apperrors.ErrOfferingNotFound
	}
	return 0, apperrors.ErrSeatUnavailable
}

// ReleaseSeat atomically returns one seat, capped at capacity, and
// reports the updated offering.
func (r *OfferingRepository) ReleaseSeat(ctx context.Context, id uuid.UUID) (*model.CourseOffering, error) {
	o := &model.CourseOffering{}
	err := r.pool.QueryRow(ctx,
		`UPDATE course_offerings
		 SET seats_remaining = LEAST(seats_remaining + 1, capacity)
		 WHERE id = $1
		 RETURNING id, semester_id, department_id, course_id, faculty_id, section,
		           classroom_id, lab_room_id, class_time, lab_time,
		           capacity, seats_remaining, created_at`, id,
	).Scan(&o.ID, &o.SemesterID, &o.DepartmentID, &o.CourseID, &o.FacultyID, &o.Section,
		&o.ClassroomID, &o.LabRoomID, &o.ClassTime, &o.LabTime,
		&o.Capacity, &o.SeatsRemaining, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOfferingNotFound
		}
		return nil, err
	}
	return o, nil
}

func scanOfferingDetails(rows pgx.Rows) ([]model.OfferingDetail, error) {
	var details []model.OfferingDetail
	for rows.Next() {
		var d model.OfferingDetail
		if err := rows.Scan(&d.ID, &d.SemesterID, &d.DepartmentID, &d.CourseID, &d.FacultyID, &d.Section,
			&d.ClassroomID, &d.LabRoomID, &d.ClassTime, &d.LabTime,
			&d.Capacity, &d.SeatsRemaining, &d.CreatedAt,
			&d.CourseCode, &d.CourseTitle, &d.Credits, &d.FacultyName,
			&d.Classroom, &d.LabRoom); err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}
