package repositories

import (
	"context"
	"errors"

	"distromart/internal/common"
	"distromart/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type InventoryRepository interface {
	Create(ctx context.Context, inventory *models.Inventory) error
	GetByProduct(ctx context.Context, tenantID, productID uuid.UUID) (*models.Inventory, error)
	Update(ctx context.Context, inventory *models.Inventory) error
	List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Inventory, error)
}

type inventoryRepo struct {
	db DBTX
}

func NewInventoryRepo(db DBTX) InventoryRepository {
	return &inventoryRepo{db: db}
}

func (r *inventoryRepo) Create(ctx context.Context, inventory *models.Inventory) error {
	query := `
		INSERT INTO inventory (id, tenant_id, product_id, quantity, min_stock, last_updated)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`
	_, err := r.db.Exec(ctx, query, inventory.ID, inventory.TenantID, inventory.ProductID, inventory.Quantity, inventory.MinStock)
	if err != nil {
		return common.NewPersistenceError("insert inventory", err)
	}
	return nil
}

func (r *inventoryRepo) GetByProduct(ctx context.Context, tenantID, productID uuid.UUID) (*models.Inventory, error) {
	inventory := &models.Inventory{}
	query := `
		SELECT id, tenant_id, product_id, quantity, min_stock, last_updated
		FROM inventory
		WHERE tenant_id = $1 AND product_id = $2
	`
	err := r.db.QueryRow(ctx, query, tenantID, productID).Scan(&inventory.ID, &inventory.TenantID, &inventory.ProductID, &inventory.Quantity, &inventory.MinStock, &inventory.LastUpdated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, common.NewPersistenceError("load inventory", err)
	}
	return inventory, nil
}

func (r *inventoryRepo) Update(ctx context.Context, inventory *models.Inventory) error {
	query := `
		UPDATE inventory
		SET quantity = $1, min_stock = $2, last_updated = NOW()
		WHERE tenant_id = $3 AND id = $4
	`
	tag, err := r.db.Exec(ctx, query, inventory.Quantity, inventory.MinStock, inventory.TenantID, inventory.ID)
	if err != nil {
		return common.NewPersistenceError("update inventory", err)
	}
	if tag.RowsAffected() == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *inventoryRepo) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Inventory, error) {
	query := `
		SELECT id, tenant_id, product_id, quantity, min_stock, last_updated
		FROM inventory
		WHERE tenant_id = $1
		ORDER BY last_updated DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, common.NewPersistenceError("list inventory", err)
	}
	defer rows.Close()

	var inventories []*models.Inventory
	for rows.Next() {
		inventory := &models.Inventory{}
		if err := rows.Scan(&inventory.ID, &inventory.TenantID, &inventory.ProductID, &inventory.Quantity, &inventory.MinStock, &inventory.LastUpdated); err != nil {
			return nil, common.NewPersistenceError("scan inventory", err)
		}
		inventories = append(inventories, inventory)
	}
	return inventories, nil
}
