package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campushq/advising-backend/internal/model"
	"github.com/campushq/advising-backend/internal/response"
	"github.com/campushq/advising-backend/internal/service"
	"github.com/campushq/advising-backend/internal/validator"
)

// OfferingHandler handles offering publication and metadata edits.
// Seat counters are out of reach here; only enrollment moves them.
type OfferingHandler struct {
	offeringService *service.OfferingService
}

// NewOfferingHandler creates a new OfferingHandler.
func NewOfferingHandler(offeringService *service.OfferingService) *OfferingHandler {
	return &OfferingHandler{offeringService: offeringService}
}

// Create godoc
// POST /api/v1/admin/offerings
// Publishes a course offering with a full complement of seats.
func (h *OfferingHandler) Create(c *gin.Context) {
	var req model.CreateOfferingRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	offering, err := h.offeringService.Publish(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"offering": offering})
}

// List godoc
// GET /api/v1/admin/offerings?semester_id=&department_id=
func (h *OfferingHandler) List(c *gin.Context) {
	semesterID, err := strconv.Atoi(c.Query("semester_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}
	departmentID, err := strconv.Atoi(c.Query("department_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	offerings, err := h.offeringService.ListBySemesterDepartment(c.Request.Context(), semesterID, departmentID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"offerings": offerings})
}

// Get godoc
// GET /api/v1/admin/offerings/:id
func (h *OfferingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	offering, err := h.offeringService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"offering": offering})
}

// Update godoc
// PUT /api/v1/admin/offerings/:id
// Edits offering metadata. Capacity and seats are immutable after publication.
func (h *OfferingHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateOfferingRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	offering, err := h.offeringService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"offering": offering})
}
