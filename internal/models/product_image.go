package models

import (
	"time"

	"github.com/google/uuid"
)

// ImageRoleMain is written to products.image_url, ImageRoleOffer to
// products.offer_image_url.
const (
	ImageRoleMain  = "main"
	ImageRoleOffer = "offer"
)

type ProductImage struct {
	ID        uuid.UUID `json:"id" db:"id"`
	TenantID  uuid.UUID `json:"tenant_id" db:"tenant_id"`
	ProductID uuid.UUID `json:"product_id" db:"product_id"`
	Role      string    `json:"role" db:"role"`
	ObjectKey string    `json:"object_key" db:"object_key"`
	ImageURL  string    `json:"image_url" db:"image_url"`
	AltText   *string   `json:"alt_text" db:"alt_text"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
