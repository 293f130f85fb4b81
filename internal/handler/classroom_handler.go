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

// ClassroomHandler handles classroom catalog management.
type ClassroomHandler struct {
	classroomService *service.ClassroomService
}

// NewClassroomHandler creates a new ClassroomHandler.
func NewClassroomHandler(classroomService *service.ClassroomService) *ClassroomHandler {
	return &ClassroomHandler{classroomService: classroomService}
}

// Create godoc
// POST /api/v1/admin/classrooms
func (h *ClassroomHandler) Create(c *gin.Context) {
	var req model.CreateClassroomRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	classroom := &model.Classroom{Building: req.Building, RoomNo: req.RoomNo}
	if err := h.classroomService.Create(c.Request.Context(), classroom); err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"classroom": classroom})
}

// List godoc
// GET /api/v1/admin/classrooms
func (h *ClassroomHandler) List(c *gin.Context) {
	classrooms, err := h.classroomService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"classrooms": classrooms})
}

// Update godoc
// PUT /api/v1/admin/classrooms/:id
func (h *ClassroomHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateClassroomRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	classroom := &model.Classroom{ID: id, Building: req.Building, RoomNo: req.RoomNo}
	if err := h.classroomService.Update(c.Request.Context(), classroom); err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"classroom": classroom})
}

// Delete godoc
// DELETE /api/v1/admin/classrooms/:id
func (h *ClassroomHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.classroomService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}
