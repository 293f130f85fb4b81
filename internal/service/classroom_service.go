package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campushq/advising-backend/internal/model"
	"github.com/campushq/advising-backend/internal/repository"
)

type ClassroomService struct {
	classroomRepo *repository.ClassroomRepository
	log           zerolog.Logger
}

func NewClassroomService(classroomRepo *repository.ClassroomRepository, log zerolog.Logger) *ClassroomService {
	return &ClassroomService{
		classroomRepo: classroomRepo,
		log:           log.With().Str("component", "classroom_service").Logger(),
	}
}

func (s *ClassroomService) Create(ctx context.Context, c *model.Classroom) error {
	return s.classroomRepo.Create(ctx, c)
}

func (s *ClassroomService) Get(ctx context.Context, id int) (*model.Classroom, error) {
	return s.classroomRepo.GetByID(ctx, id)
}

func (s *ClassroomService) List(ctx context.Context) ([]model.Classroom, error) {
	return s.classroomRepo.List(ctx)
}

func (s *ClassroomService) Update(ctx context.Context, c *model.Classroom) error {
	return s.classroomRepo.Update(ctx, c)
}

func (s *ClassroomService) Delete(ctx context.Context, id int) error {
	return s.classroomRepo.Delete(ctx, id)
}
