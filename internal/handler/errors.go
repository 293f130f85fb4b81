package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/advising-backend/internal/apperrors"
	"github.com/campushq/advising-backend/internal/response"
)

// respondError maps a domain error to the HTTP status and error code of
// the response envelope. Unrecognized errors become a 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrSeatUnavailable):
		response.Fail(c, http.StatusConflict, response.ErrSeatUnavailable)
	case errors.Is(err, apperrors.ErrAlreadyEnrolled):
		response.Fail(c, http.StatusConflict, response.ErrAlreadyEnrolled)
	case errors.Is(err, apperrors.ErrNotEnrolled):
		response.Fail(c, http.StatusNotFound, response.ErrNotEnrolled)
	case errors.Is(err, apperrors.ErrNotOffered):
		response.Fail(c, http.StatusNotFound, response.ErrNotOffered)
	case errors.Is(err, apperrors.ErrNoSemester):
		response.Fail(c, http.StatusNotFound, response.ErrNoSemester)
	case errors.Is(err, apperrors.ErrRecordNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNoEnrollments)
	case errors.Is(err, apperrors.ErrForbidden):
		response.Fail(c, http.StatusForbidden, response.ErrForbidden)
	case errors.Is(err, apperrors.ErrDuplicate):
		response.Fail(c, http.StatusConflict, response.ErrConflict)
	case errors.Is(err, apperrors.ErrDependencyExists):
		response.Fail(c, http.StatusConflict, response.ErrDependencyExists)
	case errors.Is(err, apperrors.ErrOfferingNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrFacultyNotFound),
		errors.Is(err, apperrors.ErrSemesterNotFound),
		errors.Is(err, apperrors.ErrNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
