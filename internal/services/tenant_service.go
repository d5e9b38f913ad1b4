package services

import (
	"context"
	"errors"
	"strings"

	"distromart/internal/models"
	"distromart/internal/repositories"

	"github.com/google/uuid"
)

type TenantService interface {
	Create(ctx context.Context, req *CreateTenantRequest) (*models.Tenant, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*models.Tenant, error)
	Update(ctx context.Context, req *UpdateTenantRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.Tenant, error)
}

type tenantService struct {
	tenantRepo repositories.TenantRepository
}

func NewTenantService(tenantRepo repositories.TenantRepository) TenantService {
	return &tenantService{tenantRepo: tenantRepo}
}

type CreateTenantRequest struct {
	Name string `json:"name" validate:"required"`
	Slug string `json:"slug" validate:"required"`
}

type UpdateTenantRequest struct {
	ID     uuid.UUID
	Name   string `json:"name" validate:"required"`
	Slug   string `json:"slug" validate:"required"`
	Status string `json:"status" validate:"required"`
}

func (s *tenantService) Create(ctx context.Context, req *CreateTenantRequest) (*models.Tenant, error) {
	if req.Name == "" || req.Slug == "" {
		return nil, errors.New("name and slug are required")
	}
	if strings.TrimSpace(req.Slug) != req.Slug || strings.Contains(req.Slug, " ") {
		return nil, errors.New("slug cannot have spaces")
	}

	tenant := &models.Tenant{
		ID:     uuid.New(),
		Name:   req.Name,
		Slug:   strings.ToLower(req.Slug),
		Status: "active",
	}

	if err := s.tenantRepo.Create(ctx, tenant); err != nil {
		return nil, err
	}

	return tenant, nil
}

func (s *tenantService) GetByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
	return s.tenantRepo.GetByID(ctx, id)
}

// GetBySlug resolves the tenant behind a public catalog URL.
func (s *tenantService) GetBySlug(ctx context.Context, slug string) (*models.Tenant, error) {
	if slug == "" {
		return nil, errors.New("slug is required")
	}
	return s.tenantRepo.GetBySlug(ctx, strings.ToLower(slug))
}

func (s *tenantService) Update(ctx context.Context, req *UpdateTenantRequest) error {
	existing, err := s.tenantRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	existing.Name = req.Name
	existing.Slug = req.Slug
	existing.Status = req.Status

	return s.tenantRepo.Update(ctx, existing)
}

func (s *tenantService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.tenantRepo.Delete(ctx, id)
}

func (s *tenantService) List(ctx context.Context, limit, offset int) ([]*models.Tenant, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	return s.tenantRepo.List(ctx, limit, offset)
}
