package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campushq/advising-backend/internal/model"
	"github.com/campushq/advising-backend/internal/response"
	"github.com/campushq/advising-backend/internal/service"
	"github.com/campushq/advising-backend/internal/validator"
)

// FacultyManagementHandler handles registrar management of faculty accounts.
type FacultyManagementHandler struct {
	facultyService *service.FacultyService
}

// NewFacultyManagementHandler creates a new FacultyManagementHandler.
func NewFacultyManagementHandler(facultyService *service.FacultyService) *FacultyManagementHandler {
	return &FacultyManagementHandler{facultyService: facultyService}
}

// Create godoc
// POST /api/v1/admin/faculty
func (h *FacultyManagementHandler) Create(c *gin.Context) {
	var req model.CreateFacultyRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	faculty, err := h.facultyService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"faculty": faculty})
}

// List godoc
// GET /api/v1/admin/faculty?department_id=
func (h *FacultyManagementHandler) List(c *gin.Context) {
	var departmentID *int
	if raw := c.Query("department_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
			return
		}
		departmentID = &id
	}

	faculty, err := h.facultyService.List(c.Request.Context(), departmentID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"faculty": faculty})
}

// Get godoc
// GET /api/v1/admin/faculty/:id
func (h *FacultyManagementHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	faculty, err := h.facultyService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"faculty": faculty})
}

// Update godoc
// PUT /api/v1/admin/faculty/:id
func (h *FacultyManagementHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateFacultyRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	faculty, err := h.facultyService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"faculty": faculty})
}

// Delete godoc
// DELETE /api/v1/admin/faculty/:id
func (h *FacultyManagementHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.facultyService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}
