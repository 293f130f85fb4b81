package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campushq/advising-backend/internal/middleware"
	"github.com/campushq/advising-backend/internal/response"
	"github.com/campushq/advising-backend/internal/service"
)

// FacultyHandler handles the faculty teaching surface: courses taught in
// a semester and per-offering rosters.
type FacultyHandler struct {
	enrollmentService *service.EnrollmentService
}

// NewFacultyHandler creates a new FacultyHandler.
func NewFacultyHandler(enrollmentService *service.EnrollmentService) *FacultyHandler {
	return &FacultyHandler{enrollmentService: enrollmentService}
}

// MyCourses godoc
// GET /api/v1/faculty/semesters/:semesterId/courses
// Lists the offerings the authenticated faculty member teaches in a semester.
func (h *FacultyHandler) MyCourses(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	semesterID, err := strconv.Atoi(c.Param("semesterId"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	offerings, err := h.enrollmentService.FacultyCourses(c.Request.Context(), claims.UserID, semesterID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"offerings": offerings})
}

// OfferingRoster godoc
// GET /api/v1/faculty/semesters/:semesterId/offerings/:offeringId/roster
// Lists the students enrolled in one of the faculty member's offerings.
func (h *FacultyHandler) OfferingRoster(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	semesterID, err := strconv.Atoi(c.Param("semesterId"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	offeringID, err := uuid.Parse(c.Param("offeringId"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	roster, err := h.enrollmentService.OfferingRoster(c.Request.Context(), claims.UserID, semesterID, offeringID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"roster": roster})
}
