package models

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID            uuid.UUID `json:"id" db:"id"`
	TenantID      uuid.UUID `json:"tenant_id" db:"tenant_id"`
	Name          string    `json:"name" db:"name"`
	SKU           *string   `json:"sku" db:"sku"`
	Category      *string   `json:"category" db:"category"`
	Description   *string   `json:"description" db:"description"`
	Unit          *string   `json:"unit" db:"unit"`
	Barcode       *string   `json:"barcode" db:"barcode"`
	UnitPrice     *float64  `json:"unit_price" db:"unit_price"`
	PromoPrice    *float64  `json:"promo_price" db:"promo_price"`
	OfferActive   bool      `json:"offer_is_active" db:"offer_is_active"`
	PromoLabel    *string   `json:"promo_label" db:"promo_label"`
	ImageURL      *string   `json:"image_url" db:"image_url"`
	OfferImageURL *string   `json:"offer_image_url" db:"offer_image_url"`
	Active        bool      `json:"is_active" db:"is_active"`
	ShowInCatalog bool      `json:"show_in_catalog" db:"show_in_catalog"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}
