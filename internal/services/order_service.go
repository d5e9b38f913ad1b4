package services

import (
	"context"
	"time"

	"distromart/internal/common"
	"distromart/internal/models"
	"distromart/internal/repositories"

	"github.com/google/uuid"
)

type OrderService interface {
	Create(ctx context.Context, tenantID uuid.UUID, order *models.Order) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Order, error)
	Update(ctx context.Context, tenantID uuid.UUID, order *models.Order) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID, status string, limit, offset int) ([]*models.Order, error)
}

type orderService struct {
	orderRepo    repositories.OrderRepository
	customerRepo repositories.CustomerRepository
}

func NewOrderService(orderRepo repositories.OrderRepository, customerRepo repositories.CustomerRepository) OrderService {
	return &orderService{orderRepo: orderRepo, customerRepo: customerRepo}
}

func (s *orderService) Create(ctx context.Context, tenantID uuid.UUID, order *models.Order) error {
	if order.CustomerID == uuid.Nil {
		return common.NewValidationError("customer is required")
	}
	if order.TotalAmount < 0 {
		return common.NewValidationError("total amount cannot be negative")
	}
	// The customer must exist within the same tenant.
	if _, err := s.customerRepo.GetByID(ctx, tenantID, order.CustomerID); err != nil {
		return err
	}

	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	order.TenantID = tenantID
	if order.Status == "" {
		order.Status = "pending"
	}
	if order.OrderDate.IsZero() {
		order.OrderDate = time.Now()
	}
	return s.orderRepo.Create(ctx, order)
}

func (s *orderService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Order, error) {
	return s.orderRepo.GetByID(ctx, tenantID, id)
}

func (s *orderService) Update(ctx context.Context, tenantID uuid.UUID, order *models.Order) error {
	if order.TotalAmount < 0 {
		return common.NewValidationError("total amount cannot be negative")
	}
	existing, err := s.orderRepo.GetByID(ctx, tenantID, order.ID)
	if err != nil {
		return err
	}
	order.TenantID = existing.TenantID
	if order.OrderDate.IsZero() {
		order.OrderDate = existing.OrderDate
	}
	return s.orderRepo.Update(ctx, order)
}

func (s *orderService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return s.orderRepo.Delete(ctx, tenantID, id)
}

func (s *orderService) List(ctx context.Context, tenantID uuid.UUID, status string, limit, offset int) ([]*models.Order, error) {
	limit, offset = common.ValidatePaginationParams(limit, offset)
	if status != "" && status != "all" {
		return s.orderRepo.ListByStatus(ctx, tenantID, status, limit, offset)
	}
	return s.orderRepo.List(ctx, tenantID, limit, offset)
}
