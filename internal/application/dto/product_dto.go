package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	ClubID        string           `json:"club_id"`
	Type          string           `json:"type"` // sealed, prepared, both
	Name          string           `json:"name"`
	Brand         string           `json:"brand,omitempty"`
	Category      string           `json:"category"`
	Flavor        string           `json:"flavor,omitempty"`
	ImageURL      string           `json:"image_url,omitempty"`
	Portions      int              `json:"portions,omitempty"`
	PortionSize   string           `json:"portion_size,omitempty"`
	PortionPrice  *decimal.Decimal `json:"portion_price,omitempty"`
	SalePrice     *decimal.Decimal `json:"sale_price,omitempty"`
	PurchasePrice decimal.Decimal  `json:"purchase_price"`
}

// UpdateProductRequest body para PUT /api/products/:id. Campos nil no cambian.
type UpdateProductRequest struct {
	Name          *string          `json:"name,omitempty"`
	Brand         *string          `json:"brand,omitempty"`
	Category      *string          `json:"category,omitempty"`
	Flavor        *string          `json:"flavor,omitempty"`
	ImageURL      *string          `json:"image_url,omitempty"`
	PortionSize   *string          `json:"portion_size,omitempty"`
	PortionPrice  *decimal.Decimal `json:"portion_price,omitempty"`
	SalePrice     *decimal.Decimal `json:"sale_price,omitempty"`
	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty"`
}

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID            string           `json:"id"`
	ClubID        string           `json:"club_id"`
	Type          string           `json:"type"`
	Name          string           `json:"name"`
	Brand         string           `json:"brand,omitempty"`
	Category      string           `json:"category"`
	Flavor        string           `json:"flavor,omitempty"`
	ImageURL      string           `json:"image_url,omitempty"`
	Portions      int              `json:"portions,omitempty"`
	PortionSize   string           `json:"portion_size,omitempty"`
	PortionPrice  *decimal.Decimal `json:"portion_price,omitempty"`
	SalePrice     *decimal.Decimal `json:"sale_price,omitempty"`
	PurchasePrice decimal.Decimal  `json:"purchase_price"`
	Archived      bool             `json:"archived"`
	CreatedAt     time.Time        `json:"created_at"`
}
