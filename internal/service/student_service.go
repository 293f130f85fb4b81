package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campushq/advising-backend/internal/model"
	"github.com/campushq/advising-backend/internal/repository"
)

// StudentService manages student accounts on behalf of the registrar.
type StudentService struct {
	studentRepo *repository.StudentRepository
	authService *AuthService
	log         zerolog.Logger
}

// NewStudentService creates a new StudentService.
func NewStudentService(studentRepo *repository.StudentRepository, authService *AuthService, log zerolog.Logger) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		authService: authService,
		log:         log.With().Str("component", "student_service").Logger(),
	}
}

func (s *StudentService) Create(ctx context.Context, req *model.CreateStudentRequest) (*model.Student, error) {
	hash, err := s.authService.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	student := &model.Student{
		StudentNo:    req.StudentNo,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		DepartmentID: req.DepartmentID,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *StudentService) Get(ctx context.Context, id int) (*model.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

func (s *StudentService) GetByStudentNo(ctx context.Context, studentNo string) (*model.Student, error) {
	return s.studentRepo.GetByStudentNo(ctx, studentNo)
}

func (s *StudentService) List(ctx context.Context, departmentID *int, page, perPage int) ([]model.Student, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	return s.studentRepo.ListPaginated(ctx, departmentID, perPage, (page-1)*perPage)
}

// Update edits a student account. An empty password keeps the current hash.
func (s *StudentService) Update(ctx context.Context, id int, req *model.UpdateStudentRequest) (*model.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	student.StudentNo = req.StudentNo
	student.Name = req.Name
	student.Email = req.Email
	student.DepartmentID = req.DepartmentID
	if req.Password != "" {
		hash, err := s.authService.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		student.PasswordHash = hash
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	// A credential change ends any active session.
	if req.Password != "" {
		if err := s.authService.ResetStudentSession(ctx, id); err != nil {
			s.log.Warn().Err(err).Int("student_id", id).Msg("Failed to reset session after password change")
		}
	}
	return student, nil
}

func (s *StudentService) Delete(ctx context.Context, id int) error {
	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.authService.ResetStudentSession(ctx, id); err != nil {
		s.log.Warn().Err(err).Int("student_id", id).Msg("Failed to reset session after account removal")
	}
	return nil
}
