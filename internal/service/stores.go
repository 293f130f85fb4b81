package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/campushq/advising-backend/internal/model"
)

// The enrollment service composes its two stores through narrow
// interfaces so the reservation protocol can be exercised against
// in-memory implementations. The pgx repositories satisfy them.

// SeatStore is the course offering store. TryReserveSeat and ReleaseSeat
// must be individually atomic: no two concurrent callers may both act on
// the same pre-decrement counter value. Both report the counter value
// their own mutation produced, so callers never re-read a raced counter.
type SeatStore interface {
	GetDetail(ctx context.Context, id uuid.UUID) (*model.OfferingDetail, error)
	ListPublished(ctx context.Context, semesterID, departmentID int) ([]model.OfferingDetail, error)
	ListBySemesterFaculty(ctx context.Context, semesterID, facultyID int) ([]model.OfferingDetail, error)
	TryReserveSeat(ctx context.Context, id uuid.UUID) (int, error)
	ReleaseSeat(ctx context.Context, id uuid.UUID) (*model.CourseOffering, error)
}

// RecordStore is the enrollment record store. GetOrCreate must be
// idempotent under concurrent calls for the same (student, semester);
// AddEntry must reject a duplicate offering atomically.
type RecordStore interface {
	GetOrCreate(ctx context.Context, studentID, semesterID int) (*model.EnrollmentRecord, error)
	GetByStudentSemester(ctx context.Context, studentID, semesterID int) (*model.EnrollmentRecord, error)
	AddEntry(ctx context.Context, recordID, offeringID uuid.UUID) error
	RemoveEntry(ctx context.Context, recordID, offeringID uuid.UUID) error
	ListByOffering(ctx context.Context, semesterID int, offeringID uuid.UUID) ([]model.RosterEntry, error)
}

// SemesterStore resolves the enrollment period.
type SemesterStore interface {
	Current(ctx context.Context) (*model.Semester, error)
	GetByID(ctx context.Context, id int) (*model.Semester, error)
}

// StudentStore resolves the acting student.
type StudentStore interface {
	GetByID(ctx context.Context, id int) (*model.Student, error)
}

// EventSink receives committed enrollment mutations, feeding the audit
// trail and live seat-count monitors. Publish must not fail the
// enrollment that triggered it.
type EventSink interface {
	Publish(ctx context.Context, ev model.EnrollmentEvent)
}
