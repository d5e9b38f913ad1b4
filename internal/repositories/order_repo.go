package repositories

import (
	"context"
	"errors"

	"distromart/internal/common"
	"distromart/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Order, error)
	Update(ctx context.Context, order *models.Order) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Order, error)
	ListByStatus(ctx context.Context, tenantID uuid.UUID, status string, limit, offset int) ([]*models.Order, error)
}

type orderRepo struct {
	db DBTX
}

func NewOrderRepo(db DBTX) OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Create(ctx context.Context, order *models.Order) error {
	query := `
		INSERT INTO orders (id, tenant_id, customer_id, status, total_amount, notes, order_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, order.ID, order.TenantID, order.CustomerID, order.Status, order.TotalAmount, order.Notes, order.OrderDate)
	if err != nil {
		return common.NewPersistenceError("insert order", err)
	}
	return nil
}

func (r *orderRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Order, error) {
	order := &models.Order{}
	query := `
		SELECT id, tenant_id, customer_id, status, total_amount, notes, order_date, created_at, updated_at
		FROM orders
		WHERE tenant_id = $1 AND id = $2
	`
	err := r.db.QueryRow(ctx, query, tenantID, id).Scan(&order.ID, &order.TenantID, &order.CustomerID, &order.Status, &order.TotalAmount, &order.Notes, &order.OrderDate, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, common.NewPersistenceError("load order", err)
	}
	return order, nil
}

func (r *orderRepo) Update(ctx context.Context, order *models.Order) error {
	query := `
		UPDATE orders
		SET customer_id = $1, status = $2, total_amount = $3, notes = $4, order_date = $5, updated_at = NOW()
		WHERE tenant_id = $6 AND id = $7
	`
	tag, err := r.db.Exec(ctx, query, order.CustomerID, order.Status, order.TotalAmount, order.Notes, order.OrderDate, order.TenantID, order.ID)
	if err != nil {
		return common.NewPersistenceError("update order", err)
	}
	if tag.RowsAffected() == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *orderRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	query := `DELETE FROM orders WHERE tenant_id = $1 AND id = $2`
	_, err := r.db.Exec(ctx, query, tenantID, id)
	if err != nil {
		return common.NewPersistenceError("delete order", err)
	}
	return nil
}

func (r *orderRepo) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Order, error) {
	query := `
		SELECT id, tenant_id, customer_id, status, total_amount, notes, order_date, created_at, updated_at
		FROM orders
		WHERE tenant_id = $1
		ORDER BY order_date DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, common.NewPersistenceError("list orders", err)
	}
	defer rows.Close()
	return collectOrders(rows)
}

func (r *orderRepo) ListByStatus(ctx context.Context, tenantID uuid.UUID, status string, limit, offset int) ([]*models.Order, error) {
	query := `
		SELECT id, tenant_id, customer_id, status, total_amount, notes, order_date, created_at, updated_at
		FROM orders
		WHERE tenant_id = $1 AND status = $2
		ORDER BY order_date DESC
		LIMIT $3 OFFSET $4
	`
	rows, err := r.db.Query(ctx, query, tenantID, status, limit, offset)
	if err != nil {
		return nil, common.NewPersistenceError("list orders by status", err)
	}
	defer rows.Close()
	return collectOrders(rows)
}

func collectOrders(rows pgx.Rows) ([]*models.Order, error) {
	var orders []*models.Order
	for rows.Next() {
		order := &models.Order{}
		if err := rows.Scan(&order.ID, &order.TenantID, &order.CustomerID, &order.Status, &order.TotalAmount, &order.Notes, &order.OrderDate, &order.CreatedAt, &order.UpdatedAt); err != nil {
			return nil, common.NewPersistenceError("scan order", err)
		}
		orders = append(orders, order)
	}
	return orders, nil
}
