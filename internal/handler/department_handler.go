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

// DepartmentHandler handles department catalog management.
type DepartmentHandler struct {
	departmentService *service.DepartmentService
}

// NewDepartmentHandler creates a new DepartmentHandler.
func NewDepartmentHandler(departmentService *service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{departmentService: departmentService}
}

// Create godoc
// POST /api/v1/admin/departments
func (h *DepartmentHandler) Create(c *gin.Context) {
	var req model.CreateDepartmentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	department := &model.Department{Name: req.Name, Code: req.Code}
	if err := h.departmentService.Create(c.Request.Context(), department); err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"department": department})
}

// List godoc
// GET /api/v1/admin/departments
func (h *DepartmentHandler) List(c *gin.Context) {
	departments, err := h.departmentService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"departments": departments})
}

// Get godoc
// GET /api/v1/admin/departments/:id
func (h *DepartmentHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	department, err := h.departmentService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"department": department})
}

// Update godoc
// PUT /api/v1/admin/departments/:id
func (h *DepartmentHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateDepartmentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	department := &model.Department{ID: id, Name: req.Name, Code: req.Code}
	if err := h.departmentService.Update(c.Request.Context(), department); err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"department": department})
}

// Delete godoc
// DELETE /api/v1/admin/departments/:id
func (h *DepartmentHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.departmentService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}
