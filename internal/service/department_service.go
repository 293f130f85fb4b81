package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campushq/advising-backend/internal/model"
	"github.com/campushq/advising-backend/internal/repository"
)

type DepartmentService struct {
	departmentRepo *repository.DepartmentRepository
	log            zerolog.Logger
}

func NewDepartmentService(departmentRepo *repository.DepartmentRepository, log zerolog.Logger) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
		log:            log.With().Str("component", "department_service").Logger(),
	}
}

func (s *DepartmentService) Create(ctx context.Context, d *model.Department) error {
	return s.departmentRepo.Create(ctx, d)
}

func (s *DepartmentService) Get(ctx context.Context, id int) (*model.Department, error) {
	return s.departmentRepo.GetByID(ctx, id)
}

func (s *DepartmentService) List(ctx context.Context) ([]model.Department, error) {
	return s.departmentRepo.List(ctx)
}

func (s *DepartmentService) Update(ctx context.Context, d *model.Department) error {
	return s.departmentRepo.Update(ctx, d)
}

func (s *DepartmentService) Delete(ctx context.Context, id int) error {
	return s.departmentRepo.Delete(ctx, id)
}
