package services

import (
	"context"
	"strings"

	"distromart/internal/common"
	"distromart/internal/models"
	"distromart/internal/repositories"

	"github.com/google/uuid"
)

type CustomerService interface {
	Create(ctx context.Context, tenantID uuid.UUID, customer *models.Customer) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Customer, error)
	Update(ctx context.Context, tenantID uuid.UUID, customer *models.Customer) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Customer, error)
}

type customerService struct {
	customerRepo repositories.CustomerRepository
}

func NewCustomerService(customerRepo repositories.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) Create(ctx context.Context, tenantID uuid.UUID, customer *models.Customer) error {
	if strings.TrimSpace(customer.Name) == "" {
		return common.NewValidationError("customer name is required")
	}
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	customer.TenantID = tenantID
	return s.customerRepo.Create(ctx, customer)
}

func (s *customerService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Customer, error) {
	return s.customerRepo.GetByID(ctx, tenantID, id)
}

func (s *customerService) Update(ctx context.Context, tenantID uuid.UUID, customer *models.Customer) error {
	if strings.TrimSpace(customer.Name) == "" {
		return common.NewValidationError("customer name is required")
	}
	existing, err := s.customerRepo.GetByID(ctx, tenantID, customer.ID)
	if err != nil {
		return err
	}
	customer.TenantID = existing.TenantID
	return s.customerRepo.Update(ctx, customer)
}

func (s *customerService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return s.customerRepo.Delete(ctx, tenantID, id)
}

func (s *customerService) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Customer, error) {
	limit, offset = common.ValidatePaginationParams(limit, offset)
	return s.customerRepo.List(ctx, tenantID, limit, offset)
}
