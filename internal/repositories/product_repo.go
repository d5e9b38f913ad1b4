package repositories

import (
	"context"
	"errors"
	"fmt"

	"distromart/internal/common"
	"distromart/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const productColumns = "id, tenant_id, name, sku, category, description, unit, barcode, unit_price, promo_price, offer_is_active, promo_label, image_url, offer_image_url, is_active, show_in_catalog, created_at, updated_at"

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Product, error)
	ListCatalog(ctx context.Context, tenantID uuid.UUID) ([]*models.Product, error)
	SetImageURL(ctx context.Context, tenantID, id uuid.UUID, role, url string) error
}

type productRepo struct {
	db DBTX
}

func NewProductRepo(db DBTX) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (id, tenant_id, name, sku, category, description, unit, barcode, unit_price, promo_price, offer_is_active, promo_label, image_url, offer_image_url, is_active, show_in_catalog, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query,
		product.ID, product.TenantID, product.Name, product.SKU, product.Category, product.Description,
		product.Unit, product.Barcode, product.UnitPrice, product.PromoPrice, product.OfferActive,
		product.PromoLabel, product.ImageURL, product.OfferImageURL, product.Active, product.ShowInCatalog,
	)
	if err != nil {
		return common.NewPersistenceError("insert product", err)
	}
	return nil
}

func (r *productRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE tenant_id = $1 AND id = $2`, productColumns)
	product, err := scanProduct(r.db.QueryRow(ctx, query, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, common.NewPersistenceError("load product", err)
	}
	return product, nil
}

func (r *productRepo) Update(ctx context.Context, product *models.Product) error {
	query := `
		UPDATE products
		SET name = $1, sku = $2, category = $3, description = $4, unit = $5, barcode = $6, unit_price = $7, promo_price = $8, offer_is_active = $9, promo_label = $10, is_active = $11, show_in_catalog = $12, updated_at = NOW()
		WHERE tenant_id = $13 AND id = $14
	`
	tag, err := r.db.Exec(ctx, query,
		product.Name, product.SKU, product.Category, product.Description, product.Unit, product.Barcode,
		product.UnitPrice, product.PromoPrice, product.OfferActive, product.PromoLabel,
		product.Active, product.ShowInCatalog, product.TenantID, product.ID,
	)
	if err != nil {
		return common.NewPersistenceError("update product", err)
	}
	if tag.RowsAffected() == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *productRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	query := `DELETE FROM products WHERE tenant_id = $1 AND id = $2`
	_, err := r.db.Exec(ctx, query, tenantID, id)
	if err != nil {
		return common.NewPersistenceError("delete product", err)
	}
	return nil
}

func (r *productRepo) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM products
		WHERE tenant_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, productColumns)
	rows, err := r.db.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, common.NewPersistenceError("list products", err)
	}
	defer rows.Close()
	return collectProducts(rows)
}

// ListCatalog returns what the public storefront shows: active products the
// tenant opted into the catalog, alphabetical.
func (r *productRepo) ListCatalog(ctx context.Context, tenantID uuid.UUID) ([]*models.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM products
		WHERE tenant_id = $1 AND is_active = TRUE AND show_in_catalog = TRUE
		ORDER BY name ASC
	`, productColumns)
	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		return nil, common.NewPersistenceError("list catalog products", err)
	}
	defer rows.Close()
	return collectProducts(rows)
}

func (r *productRepo) SetImageURL(ctx context.Context, tenantID, id uuid.UUID, role, url string) error {
	column := "image_url"
	if role == models.ImageRoleOffer {
		column = "offer_image_url"
	}
	query := fmt.Sprintf(`UPDATE products SET %s = $1, updated_at = NOW() WHERE tenant_id = $2 AND id = $3`, column)
	tag, err := r.db.Exec(ctx, query, url, tenantID, id)
	if err != nil {
		return common.NewPersistenceError("update product image", err)
	}
	if tag.RowsAffected() == 0 {
		return common.ErrNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (*models.Product, error) {
	product := &models.Product{}
	err := row.Scan(
		&product.ID, &product.TenantID, &product.Name, &product.SKU, &product.Category, &product.Description,
		&product.Unit, &product.Barcode, &product.UnitPrice, &product.PromoPrice, &product.OfferActive,
		&product.PromoLabel, &product.ImageURL, &product.OfferImageURL, &product.Active, &product.ShowInCatalog,
		&product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func collectProducts(rows pgx.Rows) ([]*models.Product, error) {
	var products []*models.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, common.NewPersistenceError("scan product", err)
		}
		products = append(products, product)
	}
	return products, nil
}
