package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campushq/advising-backend/internal/model"
	"github.com/campushq/advising-backend/internal/repository"
)

type CourseService struct {
	courseRepo *repository.CourseRepository
	log        zerolog.Logger
}

func NewCourseService(courseRepo *repository.CourseRepository, log zerolog.Logger) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
		log:        log.With().Str("component", "course_service").Logger(),
	}
}

func (s *CourseService) Create(ctx context.Context, c *model.Course) error {
	return s.courseRepo.Create(ctx, c)
}

func (s *CourseService) Get(ctx context.Context, id int) (*model.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

func (s *CourseService) List(ctx context.Context, departmentID *int) ([]model.Course, error) {
	return s.courseRepo.List(ctx, departmentID)
}

func (s *CourseService) Update(ctx context.Context, c *model.Course) error {
	return s.courseRepo.Update(ctx, c)
}

func (s *CourseService) Delete(ctx context.Context, id int) error {
	return s.courseRepo.Delete(ctx, id)
}
