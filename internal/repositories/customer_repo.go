package repositories

import (
	"context"
	"errors"

	"distromart/internal/common"
	"distromart/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Customer, error)
	Update(ctx context.Context, customer *models.Customer) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Customer, error)
}

type customerRepo struct {
	db DBTX
}

func NewCustomerRepo(db DBTX) CustomerRepository {
	return &customerRepo{db: db}
}

func (r *customerRepo) Create(ctx context.Context, customer *models.Customer) error {
	query := `
		INSERT INTO customers (id, tenant_id, name, company, email, phone, city, state, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, customer.ID, customer.TenantID, customer.Name, customer.Company, customer.Email, customer.Phone, customer.City, customer.State, customer.Notes)
	if err != nil {
		return common.NewPersistenceError("insert customer", err)
	}
	return nil
}

func (r *customerRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Customer, error) {
	customer := &models.Customer{}
	query := `
		SELECT id, tenant_id, name, company, email, phone, city, state, notes, created_at, updated_at
		FROM customers
		WHERE tenant_id = $1 AND id = $2
	`
	err := r.db.QueryRow(ctx, query, tenantID, id).Scan(&customer.ID, &customer.TenantID, &customer.Name, &customer.Company, &customer.Email, &customer.Phone, &customer.City, &customer.State, &customer.Notes, &customer.CreatedAt, &customer.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, common.NewPersistenceError("load customer", err)
	}
	return customer, nil
}

func (r *customerRepo) Update(ctx context.Context, customer *models.Customer) error {
	query := `
		UPDATE customers
		SET name = $1, company = $2, email = $3, phone = $4, city = $5, state = $6, notes = $7, updated_at = NOW()
		WHERE tenant_id = $8 AND id = $9
	`
	tag, err := r.db.Exec(ctx, query, customer.Name, customer.Company, customer.Email, customer.Phone, customer.City, customer.State, customer.Notes, customer.TenantID, customer.ID)
	if err != nil {
		return common.NewPersistenceError("update customer", err)
	}
	if tag.RowsAffected() == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *customerRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	query := `DELETE FROM customers WHERE tenant_id = $1 AND id = $2`
	_, err := r.db.Exec(ctx, query, tenantID, id)
	if err != nil {
		return common.NewPersistenceError("delete customer", err)
	}
	return nil
}

func (r *customerRepo) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Customer, error) {
	query := `
		SELECT id, tenant_id, name, company, email, phone, city, state, notes, created_at, updated_at
		FROM customers
		WHERE tenant_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, common.NewPersistenceError("list customers", err)
	}
	defer rows.Close()

	var customers []*models.Customer
	for rows.Next() {
		customer := &models.Customer{}
		if err := rows.Scan(&customer.ID, &customer.TenantID, &customer.Name, &customer.Company, &customer.Email, &customer.Phone, &customer.City, &customer.State, &customer.Notes, &customer.CreatedAt, &customer.UpdatedAt); err != nil {
			return nil, common.NewPersistenceError("scan customer", err)
		}
		customers = append(customers, customer)
	}
	return customers, nil
}
