package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"regexp"
	"strings"
	"time"

	"distromart/internal/caching"
	"distromart/internal/common"
	"distromart/internal/models"
	"distromart/internal/repositories"

	"github.com/google/uuid"
)

const productCacheTTL = 10 * time.Minute

// unsafeFilenameChars matches everything outside the object-key alphabet.
var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]`)

type ProductService interface {
	Create(ctx context.Context, tenantID uuid.UUID, product *models.Product) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Product, error)
	Update(ctx context.Context, tenantID uuid.UUID, product *models.Product) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Product, error)
	UploadImage(ctx context.Context, tenantID, productID uuid.UUID, upload ImageUpload) (string, error)
	ListImages(ctx context.Context, tenantID, productID uuid.UUID) ([]*models.ProductImage, error)
}

// ImageUpload carries one multipart file destined for the media bucket.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Role        string
	Reader      io.Reader
}

type productService struct {
	productRepo repositories.ProductRepository
	imageRepo   repositories.ProductImageRepository
	storage     StorageService
	cacheSvc    caching.CacheService
	bucket      string
}

func NewProductService(productRepo repositories.ProductRepository, imageRepo repositories.ProductImageRepository, storage StorageService, cacheSvc caching.CacheService, bucket string) ProductService {
	return &productService{
		productRepo: productRepo,
		imageRepo:   imageRepo,
		storage:     storage,
		cacheSvc:    cacheSvc,
		bucket:      bucket,
	}
}

func (s *productService) Create(ctx context.Context, tenantID uuid.UUID, product *models.Product) error {
	if strings.TrimSpace(product.Name) == "" {
		return common.NewValidationError("product name is required")
	}
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	product.TenantID = tenantID

	if err := s.productRepo.Create(ctx, product); err != nil {
		return err
	}
	s.invalidateCatalog(ctx, tenantID)
	return nil
}

func (s *productService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Product, error) {
	if cached, err := s.cacheSvc.GetProduct(ctx, tenantID, id); err == nil && cached != nil {
		return cached, nil
	}

	product, err := s.productRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if err := s.cacheSvc.SetProduct(ctx, tenantID, product, productCacheTTL); err != nil {
		log.Printf("WARN: failed to cache product %s: %v", id, err)
	}
	return product, nil
}

func (s *productService) Update(ctx context.Context, tenantID uuid.UUID, product *models.Product) error {
	if strings.TrimSpace(product.Name) == "" {
		return common.NewValidationError("product name is required")
	}

	existing, err := s.productRepo.GetByID(ctx, tenantID, product.ID)
	if err != nil {
		return err
	}
	// Image URLs are owned by the upload flow, not the edit form.
	product.TenantID = existing.TenantID
	product.ImageURL = existing.ImageURL
	product.OfferImageURL = existing.OfferImageURL

	if err := s.productRepo.Update(ctx, product); err != nil {
		return err
	}
	s.invalidateProduct(ctx, tenantID, product.ID)
	return nil
}

func (s *productService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	if err := s.productRepo.Delete(ctx, tenantID, id); err != nil {
		return err
	}
	s.invalidateProduct(ctx, tenantID, id)
	return nil
}

func (s *productService) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Product, error) {
	limit, offset = common.ValidatePaginationParams(limit, offset)
	return s.productRepo.List(ctx, tenantID, limit, offset)
}

// UploadImage stores the file in the media bucket, writes the public URL back
// to the product (main or offer slot) and records the upload. Returns the
// public URL.
func (s *productService) UploadImage(ctx context.Context, tenantID, productID uuid.UUID, upload ImageUpload) (string, error) {
	if upload.Reader == nil || upload.Size <= 0 {
		return "", common.NewValidationError("image file is required")
	}
	role := upload.Role
	if role != models.ImageRoleOffer {
		role = models.ImageRoleMain
	}

	// Confirm the product exists within the tenant before touching storage.
	if _, err := s.productRepo.GetByID(ctx, tenantID, productID); err != nil {
		return "", err
	}

	safeName := unsafeFilenameChars.ReplaceAllString(upload.Filename, "_")
	objectKey := fmt.Sprintf("%s/%d-%s-%s", productID.String(), time.Now().UnixMilli(), role, safeName)

	if err := s.storage.Upload(ctx, s.bucket, objectKey, upload.Reader, upload.Size, upload.ContentType); err != nil {
		return "", common.NewPersistenceError("upload product image", err)
	}

	publicURL := s.storage.PublicURL(s.bucket, objectKey)

	if err := s.productRepo.SetImageURL(ctx, tenantID, productID, role, publicURL); err != nil {
		return "", err
	}

	image := &models.ProductImage{
		ID:        uuid.New(),
		TenantID:  tenantID,
		ProductID: productID,
		Role:      role,
		ObjectKey: objectKey,
		ImageURL:  publicURL,
	}
	if err := s.imageRepo.Create(ctx, image); err != nil {
		// The URL is already on the product; the gallery row is best effort.
		log.Printf("WARN: failed to record product image %s: %v", objectKey, err)
	}

	s.invalidateProduct(ctx, tenantID, productID)
	return publicURL, nil
}

func (s *productService) ListImages(ctx context.Context, tenantID, productID uuid.UUID) ([]*models.ProductImage, error) {
	return s.imageRepo.ListByProduct(ctx, tenantID, productID)
}

func (s *productService) invalidateProduct(ctx context.Context, tenantID, productID uuid.UUID) {
	if err := s.cacheSvc.DeleteProduct(ctx, tenantID, productID); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("WARN: failed to invalidate product cache %s: %v", productID, err)
	}
	s.invalidateCatalog(ctx, tenantID)
}

func (s *productService) invalidateCatalog(ctx context.Context, tenantID uuid.UUID) {
	if err := s.cacheSvc.DeleteCatalog(ctx, tenantID); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("WARN: failed to invalidate catalog cache for tenant %s: %v", tenantID, err)
	}
}
