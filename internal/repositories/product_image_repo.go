package repositories

import (
	"context"

	"distromart/internal/common"
	"distromart/internal/models"

	"github.com/google/uuid"
)

type ProductImageRepository interface {
	Create(ctx context.Context, image *models.ProductImage) error
	ListByProduct(ctx context.Context, tenantID, productID uuid.UUID) ([]*models.ProductImage, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

type productImageRepo struct {
	db DBTX
}

func NewProductImageRepo(db DBTX) ProductImageRepository {
	return &productImageRepo{db: db}
}

func (r *productImageRepo) Create(ctx context.Context, image *models.ProductImage) error {
	query := `
		INSERT INTO product_images (id, tenant_id, product_id, role, object_key, image_url, alt_text, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
	`
	_, err := r.db.Exec(ctx, query, image.ID, image.TenantID, image.ProductID, image.Role, image.ObjectKey, image.ImageURL, image.AltText)
	if err != nil {
		return common.NewPersistenceError("insert product image", err)
	}
	return nil
}

func (r *productImageRepo) ListByProduct(ctx context.Context, tenantID, productID uuid.UUID) ([]*models.ProductImage, error) {
	query := `
		SELECT id, tenant_id, product_id, role, object_key, image_url, alt_text, created_at
		FROM product_images
		WHERE tenant_id = $1 AND product_id = $2
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, tenantID, productID)
	if err != nil {
		return nil, common.NewPersistenceError("list product images", err)
	}
	defer rows.Close()

	var images []*models.ProductImage
	for rows.Next() {
		image := &models.ProductImage{}
		if err := rows.Scan(&image.ID, &image.TenantID, &image.ProductID, &image.Role, &image.ObjectKey, &image.ImageURL, &image.AltText, &image.CreatedAt); err != nil {
			return nil, common.NewPersistenceError("scan product image", err)
		}
		images = append(images, image)
	}
	return images, nil
}

func (r *productImageRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	query := `DELETE FROM product_images WHERE tenant_id = $1 AND id = $2`
	_, err := r.db.Exec(ctx, query, tenantID, id)
	if err != nil {
		return common.NewPersistenceError("delete product image", err)
	}
	return nil
}
