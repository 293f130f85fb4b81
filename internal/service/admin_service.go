package service

import (
	"context"

	"github.com/campushq/advising-backend/internal/model"
	"github.com/campushq/advising-backend/internal/repository"
)

// AdminService manages registrar accounts. Admins are created out of
// band by the create-admin command, so there is no HTTP create surface.
type AdminService struct {
	adminRepo   *repository.AdminRepository
	authService *AuthService
}

// NewAdminService creates a new AdminService.
func NewAdminService(adminRepo *repository.AdminRepository, authService *AuthService) *AdminService {
	return &AdminService{adminRepo: adminRepo, authService: authService}
}

func (s *AdminService) Create(ctx context.Context, name, email, password string) (*model.Admin, error) {
	hash, err := s.authService.HashPassword(password)
	if err != nil {
		return nil, err
	}
	admin := &model.Admin{Name: name, Email: email, PasswordHash: hash}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *AdminService) Get(ctx context.Context, id int) (*model.Admin, error) {
	return s.adminRepo.GetByID(ctx, id)
}

func (s *AdminService) GetByEmail(ctx context.Context, email string) (*model.Admin, error) {
	return s.adminRepo.GetByEmail(ctx, email)
}
