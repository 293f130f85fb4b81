package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/campushq/advising-backend/internal/config"
	"github.com/campushq/advising-backend/internal/model"
	"github.com/campushq/advising-backend/internal/repository"
)

// OfferingService handles catalog-side offering management and the
// advising offering list. It never mutates seat counters; that is the
// enrollment service's reservation protocol.
type OfferingService struct {
	offeringRepo *repository.OfferingRepository
	semesterRepo *repository.SemesterRepository
	courseRepo   *repository.CourseRepository
	rdb          *redis.Client
	cfg          *config.Config
	log          zerolog.Logger
}

// NewOfferingService creates a new OfferingService.
func NewOfferingService(
	offeringRepo *repository.OfferingRepository,
	semesterRepo *repository.SemesterRepository,
	courseRepo *repository.CourseRepository,
	rdb *redis.Client,
	cfg *config.Config,
	log zerolog.Logger,
) *OfferingService {
	return &OfferingService{
		offeringRepo: offeringRepo,
		semesterRepo: semesterRepo,
		courseRepo:   courseRepo,
		rdb:          rdb,
		cfg:          cfg,
		log:          log.With().Str("component", "offering_service").Logger(),
	}
}

// Publish creates a new offering and invalidates the cached advising
// list for its semester and department. The offering's department is
// the owning course's department; seats start equal to capacity.
func (s *OfferingService) Publish(ctx context.Context, req *model.CreateOfferingRequest) (*model.OfferingDetail, error) {
	if _, err := s.semesterRepo.GetByID(ctx, req.SemesterID); err != nil {
		return nil, err
	}
	course, err := s.courseRepo.GetByID(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}

	offering := &model.CourseOffering{
		SemesterID:   req.SemesterID,
		DepartmentID: course.DepartmentID,
		CourseID:     req.CourseID,
		FacultyID:    req.FacultyID,
		Section:      req.Section,
		ClassroomID:  req.ClassroomID,
		LabRoomID:    req.LabRoomID,
		ClassTime:    req.ClassTime,
		LabTime:      req.LabTime,
		Capacity:     req.Capacity,
	}
	if err := s.offeringRepo.Create(ctx, offering); err != nil {
		return nil, err
	}

	s.invalidateList(ctx, offering.SemesterID, offering.DepartmentID)
	return s.offeringRepo.GetDetail(ctx, offering.ID)
}

// Update edits offering metadata (never capacity or seats).
func (s *OfferingService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateOfferingRequest) (*model.OfferingDetail, error) {
	if err := s.offeringRepo.Update(ctx, id, req); err != nil {
		return nil, err
	}
	detail, err := s.offeringRepo.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	s.invalidateList(ctx, detail.SemesterID, detail.DepartmentID)
	return detail, nil
}

// Get retrieves one offering with catalog detail.
func (s *OfferingService) Get(ctx context.Context, id uuid.UUID) (*model.OfferingDetail, error) {
	return s.offeringRepo.GetDetail(ctx, id)
}

// ListBySemesterDepartment retrieves the published list for admin screens.
func (s *OfferingService) ListBySemesterDepartment(ctx context.Context, semesterID, departmentID int) ([]model.OfferingDetail, error) {
	if _, err := s.semesterRepo.GetByID(ctx, semesterID); err != nil {
		return nil, err
	}
	return s.offeringRepo.ListPublished(ctx, semesterID, departmentID)
}

// ListAdvising returns the published offering list for the student's
// department in the current semester, served from a short-TTL Redis
// cache. Cached seat counts are advisory display values only.
func (s *OfferingService) ListAdvising(ctx context.Context, departmentID int) ([]model.OfferingDetail, error) {
	semester, err := s.semesterRepo.Current(ctx)
	if err != nil {
		return nil, err
	}

	key := config.CacheKey.OfferingListKey(semester.ID, departmentID)

	if data, err := s.rdb.Get(ctx, key).Bytes(); err == nil {
		var cached []model.OfferingDetail
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
		s.log.Warn().Str("key", key).Msg("Corrupt cached offering list, reloading")
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Msg("Offering cache read failed, falling back to database")
	}

	offerings, err := s.offeringRepo.ListPublished(ctx, semester.ID, departmentID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(offerings); err == nil {
		if err := s.rdb.Set(ctx, key, payload, s.cfg.OfferingCacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Msg("Offering cache write failed")
		}
	}

	return offerings, nil
}

func (s *OfferingService) invalidateList(ctx context.Context, semesterID, departmentID int) {
	key := config.CacheKey.OfferingListKey(semesterID, departmentID)
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Failed to invalidate offering list cache")
	}
}
