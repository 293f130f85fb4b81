package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/campushq/advising-backend/internal/apperrors"
	"github.com/campushq/advising-backend/internal/model"
)

const (
	// reserveRetries bounds transparent retries of transient store
	// failures during a seat reservation. Business outcomes
	// (SeatUnavailable, AlreadyEnrolled) are final and never retried.
	reserveRetries = 3
	reserveBackoff = 25 * time.Millisecond
)

// EnrollmentService owns the seat reservation protocol: the only code
// path that mutates an offering's seat counter together with an
// enrollment record. Reads never touch the counter.
type EnrollmentService struct {
	seats     SeatStore
	records   RecordStore
	semesters SemesterStore
	students  StudentStore
	sink      EventSink
	log       zerolog.Logger
}

// NewEnrollmentService creates a new EnrollmentService. sink may be nil
// when no audit/monitor fan-out is wanted (tests, tooling).
func NewEnrollmentService(
	seats SeatStore,
	records RecordStore,
	semesters SemesterStore,
	students StudentStore,
	sink EventSink,
	log zerolog.Logger,
) *EnrollmentService {
	return &EnrollmentService{
		seats:     seats,
		records:   records,
		semesters: semesters,
		students:  students,
		sink:      sink,
		log:       log.With().Str("component", "enrollment_service").Logger(),
	}
}

// Enroll claims a seat in an offering for the student in the current
// semester and records it in their enrollment record.
//
// The two mutations are kept consistent by ordering: the seat counter is
// claimed first through an atomic conditional decrement, and a failed
// entry insert releases that seat before returning. The entry insert
// itself is guarded by the record's unique (record, offering) constraint,
// so a lost race against an identical request surfaces as
// ErrAlreadyEnrolled, never a duplicate entry or a leaked seat.
func (s *EnrollmentService) Enroll(ctx context.Context, studentID int, offeringID uuid.UUID) (*model.EnrollmentRecord, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	semester, err := s.semesters.Current(ctx)
	if err != nil {
		return nil, err
	}

	offering, err := s.seats.GetDetail(ctx, offeringID)
	if err != nil {
		return nil, err
	}

	// The offering must be on the published list for the student's
	// department and the current semester.
	if offering.SemesterID != semester.ID || offering.DepartmentID != student.DepartmentID {
		return nil, apperrors.ErrNotOffered
	}

	record, err := s.records.GetOrCreate(ctx, student.ID, semester.ID)
	if err != nil {
		return nil, err
	}

	// Cheap duplicate pre-check so a doomed request does not briefly
	// hold a seat another student could have taken.
	for _, entry := range record.Entries {
		if entry.OfferingID == offeringID {
			return nil, apperrors.ErrAlreadyEnrolled
		}
	}

	seatsLeft, err := s.reserveSeat(ctx, offeringID)
	if err != nil {
		return nil, err
	}

	if err := s.records.AddEntry(ctx, record.ID, offeringID); err != nil {
		// The seat was claimed but the entry lost its race (or the
		// store failed); give the seat back before reporting.
		if _, relErr := s.releaseSeat(ctx, offeringID); relErr != nil {
			s.log.Error().Err(relErr).
				Str("offering_id", offeringID.String()).
				Int("student_id", studentID).
				Msg("Failed to release seat after add-entry failure")
		}
		return nil, err
	}

	s.publish(ctx, student.ID, semester.ID, offeringID, seatsLeft, model.ActionEnroll)

	return s.loadRecordView(ctx, student.ID, semester.ID)
}

// Withdraw removes the student's entry for an offering in the current
// semester and returns the seat. The entry is removed first; if the
// student was not enrolled, no seat is released.
func (s *EnrollmentService) Withdraw(ctx context.Context, studentID int, offeringID uuid.UUID) (*model.CourseOffering, error) {
	semester, err := s.semesters.Current(ctx)
	if err != nil {
		return nil, err
	}

	record, err := s.records.GetByStudentSemester(ctx, studentID, semester.ID)
	if err != nil {
		return nil, err
	}

	if err := s.records.RemoveEntry(ctx, record.ID, offeringID); err != nil {
		return nil, err
	}

	offering, err := s.releaseSeat(ctx, offeringID)
	if err != nil {
		// The entry is gone but the counter could not move even after
		// retrying. Surface the failure loudly; the audit trail
		// pinpoints the offering.
		s.log.Error().Err(err).
			Str("offering_id", offeringID.String()).
			Int("student_id", studentID).
			Msg("Failed to release seat after entry removal")
		return nil, err
	}

	s.publish(ctx, studentID, semester.ID, offeringID, offering.SeatsRemaining, model.ActionWithdraw)

	return offering, nil
}

// ListMyEnrollment returns the student's record for the current semester
// with each entry resolved to full offering detail. A record whose
// entries were all withdrawn is returned empty rather than treated as
// missing.
func (s *EnrollmentService) ListMyEnrollment(ctx context.Context, studentID int) (*model.EnrollmentRecord, error) {
	semester, err := s.semesters.Current(ctx)
	if err != nil {
		return nil, err
	}
	return s.loadRecordView(ctx, studentID, semester.ID)
}

// FacultyCourses returns the offerings taught by a faculty member in the
// given semester.
func (s *EnrollmentService) FacultyCourses(ctx context.Context, facultyID, semesterID int) ([]model.OfferingDetail, error) {
	if _, err := s.semesters.GetByID(ctx, semesterID); err != nil {
		return nil, err
	}

	offerings, err := s.seats.ListBySemesterFaculty(ctx, semesterID, facultyID)
	if err != nil {
		return nil, err
	}
	if len(offerings) == 0 {
		return nil, apperrors.ErrOfferingNotFound
	}
	return offerings, nil
}

// OfferingRoster returns the students enrolled in an offering, restricted
// to the faculty member teaching it.
func (s *EnrollmentService) OfferingRoster(ctx context.Context, facultyID, semesterID int, offeringID uuid.UUID) ([]model.RosterEntry, error) {
	offering, err := s.seats.GetDetail(ctx, offeringID)
	if err != nil {
		return nil, err
	}
	if offering.FacultyID != facultyID {
		return nil, apperrors.ErrForbidden
	}

	roster, err := s.records.ListByOffering(ctx, semesterID, offeringID)
	if err != nil {
		return nil, err
	}
	if len(roster) == 0 {
		return nil, apperrors.ErrRecordNotFound
	}
	return roster, nil
}

// reserveSeat claims one seat, retrying transient store failures a
// bounded number of times. SeatUnavailable is only returned once the
// counter is confirmed exhausted.
func (s *EnrollmentService) reserveSeat(ctx context.Context, offeringID uuid.UUID) (int, error) {
	var seatsLeft int
	var err error
	for attempt := 0; attempt < reserveRetries; attempt++ {
		seatsLeft, err = s.seats.TryReserveSeat(ctx, offeringID)
		if err == nil ||
			errors.Is(err, apperrors.ErrSeatUnavailable) ||
			errors.Is(err, apperrors.ErrOfferingNotFound) {
			return seatsLeft, err
		}

		s.log.Warn().Err(err).
			Str("offering_id", offeringID.String()).
			Int("attempt", attempt+1).
			Msg("Transient reservation failure, retrying")

		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(reserveBackoff):
		}
	}
	return 0, err
}

// releaseSeat returns one seat with the same retry budget. It runs after
// a committed mutation (an entry removed, or a reservation to unwind),
// so a transient store failure here must not immediately strand the
// counter away from the entry set.
func (s *EnrollmentService) releaseSeat(ctx context.Context, offeringID uuid.UUID) (*model.CourseOffering, error) {
	var offering *model.CourseOffering
	var err error
	for attempt := 0; attempt < reserveRetries; attempt++ {
		offering, err = s.seats.ReleaseSeat(ctx, offeringID)
		if err == nil || errors.Is(err, apperrors.ErrOfferingNotFound) {
			return offering, err
		}

		s.log.Warn().Err(err).
			Str("offering_id", offeringID.String()).
			Int("attempt", attempt+1).
			Msg("Transient release failure, retrying")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(reserveBackoff):
		}
	}
	return nil, err
}

func (s *EnrollmentService) loadRecordView(ctx context.Context, studentID, semesterID int) (*model.EnrollmentRecord, error) {
	record, err := s.records.GetByStudentSemester(ctx, studentID, semesterID)
	if err != nil {
		return nil, err
	}

	for i := range record.Entries {
		detail, err := s.seats.GetDetail(ctx, record.Entries[i].OfferingID)
		if err != nil {
			// An entry pointing at a missing offering is a data fault,
			// not a reason to hide the rest of the record.
			s.log.Error().Err(err).
				Str("offering_id", record.Entries[i].OfferingID.String()).
				Msg("Entry references unresolvable offering")
			continue
		}
		record.Entries[i].Offering = detail
	}
	return record, nil
}

// publish fans a committed mutation out to the sink. seatsRemaining is
// the counter value the mutation itself produced; re-reading it here
// would race concurrent enrollments.
func (s *EnrollmentService) publish(ctx context.Context, studentID, semesterID int, offeringID uuid.UUID, seatsRemaining int, action model.EnrollmentAction) {
	if s.sink == nil {
		return
	}

	s.sink.Publish(ctx, model.EnrollmentEvent{
		OfferingID:     offeringID,
		StudentID:      studentID,
		SemesterID:     semesterID,
		Action:         action,
		SeatsRemaining: seatsRemaining,
		OccurredAt:     time.Now().UTC(),
	})
}
