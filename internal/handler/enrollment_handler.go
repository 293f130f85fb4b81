package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/advising-backend/internal/middleware"
	"github.com/campushq/advising-backend/internal/model"
	"github.com/campushq/advising-backend/internal/response"
	"github.com/campushq/advising-backend/internal/service"
	"github.com/campushq/advising-backend/internal/validator"
)

// EnrollmentHandler handles the student advising surface: browsing the
// offering list, enrolling, withdrawing, and viewing the current record.
type EnrollmentHandler struct {
	enrollmentService *service.EnrollmentService
	offeringService   *service.OfferingService
}

// NewEnrollmentHandler creates a new EnrollmentHandler.
func NewEnrollmentHandler(
	enrollmentService *service.EnrollmentService,
	offeringService *service.OfferingService,
) *EnrollmentHandler {
	return &EnrollmentHandler{
		enrollmentService: enrollmentService,
		offeringService:   offeringService,
	}
}

// ListOfferings godoc
// GET /api/v1/advising/offerings
// Lists the published offerings for the student's department in the
// current semester. Seat counts are advisory; enrollment decides.
func (h *EnrollmentHandler) ListOfferings(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	offerings, err := h.offeringService.ListAdvising(c.Request.Context(), claims.DepartmentID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"offerings": offerings})
}

// Enroll godoc
// POST /api/v1/advising/enroll
// Claims one seat in an offering for the authenticated student.
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.EnrollRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	record, err := h.enrollmentService.Enroll(c.Request.Context(), claims.UserID, req.OfferingID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"record": record})
}

// Withdraw godoc
// POST /api/v1/advising/withdraw
// Releases the student's seat in an offering.
func (h *EnrollmentHandler) Withdraw(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.EnrollRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	offering, err := h.enrollmentService.Withdraw(c.Request.Context(), claims.UserID, req.OfferingID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"offering": offering})
}

// MyEnrollment godoc
// GET /api/v1/advising/me
// Returns the student's enrollment record for the current semester with
// offering details resolved.
func (h *EnrollmentHandler) MyEnrollment(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	record, err := h.enrollmentService.ListMyEnrollment(c.Request.Context(), claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"record": record})
}
