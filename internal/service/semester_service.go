package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campushq/advising-backend/internal/model"
	"github.com/campushq/advising-backend/internal/repository"
)

// SemesterService handles semester lifecycle. Creating a semester makes
// it the current one immediately; currency is defined by creation
// order, not by calendar dates.
type SemesterService struct {
	semesterRepo *repository.SemesterRepository
	log          zerolog.Logger
}

// NewSemesterService creates a new SemesterService.
func NewSemesterService(semesterRepo *repository.SemesterRepository, log zerolog.Logger) *SemesterService {
	return &SemesterService{
		semesterRepo: semesterRepo,
		log:          log.With().Str("component", "semester_service").Logger(),
	}
}

func (s *SemesterService) Create(ctx context.Context, semester *model.Semester) error {
	if err := s.semesterRepo.Create(ctx, semester); err != nil {
		return err
	}
	s.log.Info().
		Str("season", string(semester.Season)).
		Int("year", semester.Year).
		Msg("New current semester opened")
	return nil
}

func (s *SemesterService) Current(ctx context.Context) (*model.Semester, error) {
	return s.semesterRepo.Current(ctx)
}

func (s *SemesterService) Get(ctx context.Context, id int) (*model.Semester, error) {
	return s.semesterRepo.GetByID(ctx, id)
}

func (s *SemesterService) List(ctx context.Context) ([]model.Semester, error) {
	return s.semesterRepo.List(ctx)
}
