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

// EnrollmentRepository handles enrollment record and entry data access.
// The unique constraints on (student_id, semester_id) and on
// (record_id, offering_id) are the second line of defense behind the
// reservation protocol; every write here leans on them.
type EnrollmentRepository struct {
	pool *pgxpool.Pool
}

// NewEnrollmentRepository creates a new EnrollmentRepository.
func NewEnrollmentRepository(pool *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{pool: pool}
}

// GetOrCreate returns the enrollment record for (student, semester),
// creating an empty one if none exists. Concurrent calls for the same
// pair converge on a single row via the unique constraint.
func (r *EnrollmentRepository) GetOrCreate(ctx context.Context, studentID, semesterID int) (*model.EnrollmentRecord, error) {
	rec := &model.EnrollmentRecord{StudentID: studentID, SemesterID: semesterID}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO enrollment_records (student_id, semester_id)
		 VALUES ($1, $2)
		 ON CONFLICT (student_id, semester_id) DO NOTHING
		 RETURNING id, created_at`, studentID, semesterID,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err == nil {
		rec.Entries = []model.EnrollmentEntry{}
		return rec, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	// Lost the insert race (or the record predates this call); load it.
	return r.GetByStudentSemester(ctx, studentID, semesterID)
}

// GetByStudentSemester retrieves a record and its entries.
func (r *EnrollmentRepository) GetByStudentSemester(ctx context.Context, studentID, semesterID int) (*model.EnrollmentRecord, error) {
	rec := &model.EnrollmentRecord{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, student_id, semester_id, created_at
		 FROM enrollment_records
		 WHERE student_id = $1 AND semester_id = $2`, studentID, semesterID,
	).Scan(&rec.ID, &rec.StudentID, &rec.SemesterID, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRecordNotFound
		}
		return nil, err
	}

	entries, err := r.listEntries(ctx, rec.ID)
	if err != nil {
		return nil, err
	}
	rec.Entries = entries
	return rec, nil
}

// AddEntry appends an offering to a record. A duplicate offering within
// the record resolves to ErrAlreadyEnrolled without mutation, even when
// two identical requests race.
func (r *EnrollmentRepository) AddEntry(ctx context.Context, recordID, offeringID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`INSERT INTO enrollment_entries (record_id, offering_id)
		 VALUES ($1, $2)
		 ON CONFLICT (record_id, offering_id) DO NOTHING`, recordID, offeringID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAlreadyEnrolled
	}
	return nil
}

// RemoveEntry removes an offering from a record.
func (r *EnrollmentRepository) RemoveEntry(ctx context.Context, recordID, offeringID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM enrollment_entries
		 WHERE record_id = $1 AND offering_id = $2`, recordID, offeringID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotEnrolled
	}
	return nil
}

// ListByOffering retrieves the roster of students enrolled in an
// offering within a semester.
func (r *EnrollmentRepository) ListByOffering(ctx context.Context, semesterID int, offeringID uuid.UUID) ([]model.RosterEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT er.id, s.id, s.student_no, s.name,
		        ee.mid1, ee.mid2, ee.final, ee.assignment, ee.enrolled_at
		 FROM enrollment_entries ee
		 JOIN enrollment_records er ON ee.record_id = er.id
		 JOIN students s ON er.student_id = s.id
		 WHERE er.semester_id = $1 AND ee.offering_id = $2
		 ORDER BY s.name`, semesterID, offeringID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roster []model.RosterEntry
	for rows.Next() {
		var e model.RosterEntry
		if err := rows.Scan(&e.RecordID, &e.StudentID, &e.StudentNo, &e.Name,
			&e.Marks.Mid1, &e.Marks.Mid2, &e.Marks.Final, &e.Marks.Assignment,
			&e.EnrolledAt); err != nil {
			return nil, err
		}
		roster = append(roster, e)
	}
	return roster, rows.Err()
}

func (r *EnrollmentRepository) listEntries(ctx context.Context, recordID uuid.UUID) ([]model.EnrollmentEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, offering_id, mid1, mid2, final, assignment, enrolled_at
		 FROM enrollment_entries
		 WHERE record_id = $1
		 ORDER BY enrolled_at`, recordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []model.EnrollmentEntry{}
	for rows.Next() {
		var e model.EnrollmentEntry
		if err := rows.Scan(&e.ID, &e.OfferingID,
			&e.Marks.Mid1, &e.Marks.Mid2, &e.Marks.Final, &e.Marks.Assignment,
			&e.EnrolledAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
