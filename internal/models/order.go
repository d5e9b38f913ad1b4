package models

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	TenantID    uuid.UUID  `json:"tenant_id" db:"tenant_id"`
	CustomerID  uuid.UUID  `json:"customer_id" db:"customer_id"`
	Status      string     `json:"status" db:"status"`
	TotalAmount float64    `json:"total_amount" db:"total_amount"`
	Notes       *string    `json:"notes" db:"notes"`
	OrderDate   time.Time  `json:"order_date" db:"order_date"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}
