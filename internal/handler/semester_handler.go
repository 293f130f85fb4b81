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

// SemesterHandler handles semester lifecycle management.
type SemesterHandler struct {
	semesterService *service.SemesterService
}

// NewSemesterHandler creates a new SemesterHandler.
func NewSemesterHandler(semesterService *service.SemesterService) *SemesterHandler {
	return &SemesterHandler{semesterService: semesterService}
}

// Create godoc
// POST /api/v1/admin/semesters
// Opens a new semester. It becomes the current enrollment period immediately.
func (h *SemesterHandler) Create(c *gin.Context) {
	var req model.CreateSemesterRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	semester := &model.Semester{Season: req.Season, Year: req.Year}
	if err := h.semesterService.Create(c.Request.Context(), semester); err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"semester": semester})
}

// List godoc
// GET /api/v1/admin/semesters
func (h *SemesterHandler) List(c *gin.Context) {
	semesters, err := h.semesterService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"semesters": semesters})
}

// Get godoc
// GET /api/v1/admin/semesters/:id
func (h *SemesterHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	semester, err := h.semesterService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"semester": semester})
}

// Current godoc
// GET /api/v1/semesters/current
// Returns the current enrollment period. Available to any authenticated role.
func (h *SemesterHandler) Current(c *gin.Context) {
	semester, err := h.semesterService.Current(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"semester": semester})
}
