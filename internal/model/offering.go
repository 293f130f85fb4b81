package model

import (
	"time"

	"github.com/google/uuid"
)

// CourseOffering represents one scheduled section of a course within a
// semester and department, with a fixed seat capacity.
//
// SeatsRemaining is mutated exclusively through the seat reservation
// protocol (reserve/release); catalog edits never touch it once the
// offering exists.
type CourseOffering struct {
	ID             uuid.UUID `json:"id"`
	SemesterID     int       `json:"semester_id"`
	DepartmentID   int       `json:"department_id"`
	CourseID       int       `json:"course_id"`
	FacultyID      int       `json:"faculty_id"`
	Section        int       `json:"section"`
	ClassroomID    int       `json:"classroom_id"`
	LabRoomID      *int      `json:"lab_room_id,omitempty"`
	ClassTime      string    `json:"class_time"`
	LabTime        *string   `json:"lab_time,omitempty"`
	Capacity       int       `json:"capacity"`
	SeatsRemaining int       `json:"seats_remaining"`
	CreatedAt      time.Time `json:"created_at"`
}

// OfferingDetail is a CourseOffering joined with its descriptive catalog
// metadata, the shape served to advising and faculty screens.
type OfferingDetail struct {
	CourseOffering
	CourseCode  string  `json:"course_code"`
	CourseTitle string  `json:"course_title"`
	Credits     int     `json:"credits"`
	FacultyName string  `json:"faculty_name"`
	Classroom   string  `json:"classroom"`
	LabRoom     *string `json:"lab_room,omitempty"`
}

// CreateOfferingRequest is the payload for publishing a course offering.
type CreateOfferingRequest struct {
	SemesterID  int     `json:"semester_id" binding:"required"`
	CourseID    int     `json:"course_id" binding:"required"`
	FacultyID   int     `json:"faculty_id" binding:"required"`
	Section     int     `json:"section" binding:"required,min=1,max=20"`
	ClassroomID int     `json:"classroom_id" binding:"required"`
	LabRoomID   *int    `json:"lab_room_id"`
	ClassTime   string  `json:"class_time" binding:"required,min=2,max=100"`
	LabTime     *string `json:"lab_time" binding:"omitempty,min=2,max=100"`
	Capacity    int     `json:"capacity" binding:"required,min=1,max=500"`
}

// UpdateOfferingRequest is the payload for editing offering metadata.
// Capacity and seat counts are deliberately absent.
type UpdateOfferingRequest struct {
	FacultyID   int     `json:"faculty_id" binding:"required"`
	ClassroomID int     `json:"classroom_id" binding:"required"`
	LabRoomID   *int    `json:"lab_room_id"`
	ClassTime   string  `json:"class_time" binding:"required,min=2,max=100"`
	LabTime     *string `json:"lab_time" binding:"omitempty,min=2,max=100"`
}
