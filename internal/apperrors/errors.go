// Package apperrors defines the sentinel errors shared by repositories,
// services and handlers. Every enrollment operation resolves to exactly
// one of these outcomes; none of them represent partial success.
package apperrors

import "errors"

// Enrollment outcomes. SeatUnavailable and AlreadyEnrolled are expected,
// frequent results of racing requests and are final for that attempt.
var (
	ErrSeatUnavailable = errors.New("no seats available for this offering")
	ErrAlreadyEnrolled = errors.New("student is already enrolled in this offering")
	ErrNotEnrolled     = errors.New("student is not enrolled in this offering")
	ErrNotOffered      = errors.New("offering is not published for this semester and department")
)

// Resource lookups.
var (
	ErrStudentNotFound  = errors.New("student not found")
	ErrFacultyNotFound  = errors.New("faculty member not found")
	ErrOfferingNotFound = errors.New("course offering not found")
	ErrRecordNotFound   = errors.New("enrollment record not found")
	ErrNoSemester       = errors.New("no semester exists")
	ErrSemesterNotFound = errors.New("semester not found")
	ErrNotFound         = errors.New("resource not found")
)

// Authorization.
var (
	ErrForbidden = errors.New("not permitted to access this resource")
)

// Catalog conflicts.
var (
	ErrDuplicate        = errors.New("resource already exists")
	ErrDependencyExists = errors.New("resource is still referenced by other data")
)
