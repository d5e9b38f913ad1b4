package services

import (
	"context"
	"log"
	"time"

	"distromart/internal/caching"
	"distromart/internal/models"
	"distromart/internal/repositories"

	"github.com/google/uuid"
)

const catalogCacheTTL = 5 * time.Minute

// CatalogService serves the public storefront listing: active products the
// tenant opted into the catalog, behind a short-lived cache.
type CatalogService interface {
	ListPublic(ctx context.Context, tenantID uuid.UUID) ([]*models.Product, error)
	Refresh(ctx context.Context, tenantID uuid.UUID) error
}

type catalogService struct {
	productRepo repositories.ProductRepository
	cacheSvc    caching.CacheService
}

func NewCatalogService(productRepo repositories.ProductRepository, cacheSvc caching.CacheService) CatalogService {
	return &catalogService{productRepo: productRepo, cacheSvc: cacheSvc}
}

func (s *catalogService) ListPublic(ctx context.Context, tenantID uuid.UUID) ([]*models.Product, error) {
	if cached, err := s.cacheSvc.GetCatalog(ctx, tenantID); err == nil && cached != nil {
		return cached, nil
	}

	products, err := s.productRepo.ListCatalog(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if err := s.cacheSvc.SetCatalog(ctx, tenantID, products, catalogCacheTTL); err != nil {
		log.Printf("WARN: failed to cache catalog for tenant %s: %v", tenantID, err)
	}
	return products, nil
}

// Refresh re-warms the cached listing; the background scheduler calls this per
// tenant.
func (s *catalogService) Refresh(ctx context.Context, tenantID uuid.UUID) error {
	products, err := s.productRepo.ListCatalog(ctx, tenantID)
	if err != nil {
		return err
	}
	return s.cacheSvc.SetCatalog(ctx, tenantID, products, catalogCacheTTL)
}
