package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campushq/advising-backend/internal/model"
	"github.com/campushq/advising-backend/internal/repository"
)

// FacultyService manages faculty accounts on behalf of the registrar.
type FacultyService struct {
	facultyRepo *repository.FacultyRepository
	authService *AuthService
	log         zerolog.Logger
}

// NewFacultyService creates a new FacultyService.
func NewFacultyService(facultyRepo *repository.FacultyRepository, authService *AuthService, log zerolog.Logger) *FacultyService {
	return &FacultyService{
		facultyRepo: facultyRepo,
		authService: authService,
		log:         log.With().Str("component", "faculty_service").Logger(),
	}
}

func (s *FacultyService) Create(ctx context.Context, req *model.CreateFacultyRequest) (*model.Faculty, error) {
	hash, err := s.authService.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	faculty := &model.Faculty{
		DepartmentID: req.DepartmentID,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := s.facultyRepo.Create(ctx, faculty); err != nil {
		return nil, err
	}
	return faculty, nil
}

func (s *FacultyService) Get(ctx context.Context, id int) (*model.Faculty, error) {
	return s.facultyRepo.GetByID(ctx, id)
}

func (s *FacultyService) GetByEmail(ctx context.Context, email string) (*model.Faculty, error) {
	return s.facultyRepo.GetByEmail(ctx, email)
}

func (s *FacultyService) List(ctx context.Context, departmentID *int) ([]model.Faculty, error) {
	return s.facultyRepo.List(ctx, departmentID)
}

// Update edits a faculty account. An empty password keeps the current hash.
func (s *FacultyService) Update(ctx context.Context, id int, req *model.UpdateFacultyRequest) (*model.Faculty, error) {
	faculty := &model.Faculty{
		ID:           id,
		DepartmentID: req.DepartmentID,
		Name:         req.Name,
		Email:        req.Email,
	}
	if req.Password != "" {
		hash, err := s.authService.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		faculty.PasswordHash = hash
	}

	if err := s.facultyRepo.Update(ctx, faculty); err != nil {
		return nil, err
	}
	return s.facultyRepo.GetByID(ctx, id)
}

func (s *FacultyService) Delete(ctx context.Context, id int) error {
	return s.facultyRepo.Delete(ctx, id)
}
