package services

import (
	"context"
	"errors"

	"distromart/internal/common"
	"distromart/internal/models"
	"distromart/internal/repositories"

	"github.com/google/uuid"
)

type InventoryService interface {
	List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Inventory, error)
	GetByProduct(ctx context.Context, tenantID, productID uuid.UUID) (*models.Inventory, error)
	AdjustStock(ctx context.Context, tenantID, productID uuid.UUID, delta int) (*models.Inventory, error)
	SetMinStock(ctx context.Context, tenantID, productID uuid.UUID, minStock int) error
}

type inventoryService struct {
	inventoryRepo repositories.InventoryRepository
	productRepo   repositories.ProductRepository
}

func NewInventoryService(inventoryRepo repositories.InventoryRepository, productRepo repositories.ProductRepository) InventoryService {
	return &inventoryService{inventoryRepo: inventoryRepo, productRepo: productRepo}
}

func (s *inventoryService) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Inventory, error) {
	limit, offset = common.ValidatePaginationParams(limit, offset)
	return s.inventoryRepo.List(ctx, tenantID, limit, offset)
}

func (s *inventoryService) GetByProduct(ctx context.Context, tenantID, productID uuid.UUID) (*models.Inventory, error) {
	return s.inventoryRepo.GetByProduct(ctx, tenantID, productID)
}

// AdjustStock applies a delta to the product's stock row, creating the row on
// first receipt. Stock never goes negative.
func (s *inventoryService) AdjustStock(ctx context.Context, tenantID, productID uuid.UUID, delta int) (*models.Inventory, error) {
	inventory, err := s.inventoryRepo.GetByProduct(ctx, tenantID, productID)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			return nil, err
		}
		if delta < 0 {
			return nil, common.NewValidationError("cannot remove stock from a product with no inventory")
		}
		// First receipt for this product.
		if _, err := s.productRepo.GetByID(ctx, tenantID, productID); err != nil {
			return nil, err
		}
		inventory = &models.Inventory{
			ID:        uuid.New(),
			TenantID:  tenantID,
			ProductID: productID,
			Quantity:  delta,
		}
		if err := s.inventoryRepo.Create(ctx, inventory); err != nil {
			return nil, err
		}
		return inventory, nil
	}

	newQuantity := inventory.Quantity + delta
	if newQuantity < 0 {
		return nil, common.NewValidationError("insufficient stock: %d available, %d requested", inventory.Quantity, -delta)
	}
	inventory.Quantity = newQuantity

	if err := s.inventoryRepo.Update(ctx, inventory); err != nil {
		return nil, err
	}
	return inventory, nil
}

func (s *inventoryService) SetMinStock(ctx context.Context, tenantID, productID uuid.UUID, minStock int) error {
	if minStock < 0 {
		return common.NewValidationError("minimum stock cannot be negative")
	}
	inventory, err := s.inventoryRepo.GetByProduct(ctx, tenantID, productID)
	if err != nil {
		return err
	}
	inventory.MinStock = minStock
	return s.inventoryRepo.Update(ctx, inventory)
}
