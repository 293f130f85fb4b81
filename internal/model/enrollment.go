package model

import (
	"time"

	"github.com/google/uuid"
)

// Marks holds the grading sub-record of an enrollment entry. All fields
// default to zero; they are edited by the grading feature, never here.
type Marks struct {
	Mid1       float64 `json:"mid1"`
	Mid2       float64 `json:"mid2"`
	Final      float64 `json:"final"`
	Assignment float64 `json:"assignment"`
}

// EnrollmentEntry is one claimed offering inside an enrollment record.
type EnrollmentEntry struct {
	ID         uuid.UUID       `json:"id"`
	OfferingID uuid.UUID       `json:"offering_id"`
	Marks      Marks           `json:"marks"`
	EnrolledAt time.Time       `json:"enrolled_at"`
	Offering   *OfferingDetail `json:"offering,omitempty"`
}

// EnrollmentRecord aggregates all offerings a student has claimed in one
// semester. At most one record exists per (student, semester); a record
// whose entries have all been withdrawn is retained empty.
type EnrollmentRecord struct {
	ID         uuid.UUID         `json:"id"`
	StudentID  int               `json:"student_id"`
	SemesterID int               `json:"semester_id"`
	CreatedAt  time.Time         `json:"created_at"`
	Entries    []EnrollmentEntry `json:"entries"`
}

// RosterEntry is one student row in a faculty roster view.
type RosterEntry struct {
	RecordID   uuid.UUID `json:"record_id"`
	StudentID  int       `json:"student_id"`
	StudentNo  string    `json:"student_no"`
	Name       string    `json:"name"`
	Marks      Marks     `json:"marks"`
	EnrolledAt time.Time `json:"enrolled_at"`
}

// EnrollRequest is the payload for enroll and withdraw calls.
type EnrollRequest struct {
	OfferingID uuid.UUID `json:"offering_id" binding:"required"`
}

// EnrollmentAction enumerates audited enrollment mutations.
type EnrollmentAction string

const (
	ActionEnroll   EnrollmentAction = "ENROLL"
	ActionWithdraw EnrollmentAction = "WITHDRAW"
)

// EnrollmentEvent is the audit-trail payload queued for the background
// worker after every committed enroll/withdraw.
type EnrollmentEvent struct {
	OfferingID     uuid.UUID        `json:"offering_id"`
	StudentID      int              `json:"student_id"`
	SemesterID     int              `json:"semester_id"`
	Action         EnrollmentAction `json:"action"`
	SeatsRemaining int              `json:"seats_remaining"`
	OccurredAt     time.Time        `json:"occurred_at"`
}
