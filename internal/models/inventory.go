package models

import (
	"time"

	"github.com/google/uuid"
)

type Inventory struct {
	ID          uuid.UUID `json:"id" db:"id"`
	TenantID    uuid.UUID `json:"tenant_id" db:"tenant_id"`
	ProductID   uuid.UUID `json:"product_id" db:"product_id"`
	Quantity    int       `json:"quantity" db:"quantity"`
	MinStock    int       `json:"min_stock" db:"min_stock"`
	LastUpdated time.Time `json:"last_updated" db:"last_updated"`
}
