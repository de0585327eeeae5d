package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea de venta.
type SaleItemRequest struct {
	ProductID       string           `json:"product_id"`
	Type            string           `json:"type"` // sealed, prepared
	Quantity        int              `json:"quantity"`
	UnitPrice       decimal.Decimal  `json:"unit_price"`
	Portions        int              `json:"portions,omitempty"`
	PricePerPortion *decimal.Decimal `json:"price_per_portion,omitempty"`
	CustomPrice     bool             `json:"custom_price,omitempty"`
}

// SaleGroupRequest grupo de líneas de venta.
type SaleGroupRequest struct {
	Name  string            `json:"name"`
	Items []SaleItemRequest `json:"items"`
}

// RegisterSaleRequest body para POST /api/sales.
type RegisterSaleRequest struct {
	ClubID     string             `json:"club_id"`
	ClientID   string             `json:"client_id,omitempty"`
	ItemGroups []SaleGroupRequest `json:"item_groups"`
	Total      decimal.Decimal    `json:"total"`
}

// SaleItemResponse línea de venta en respuestas.
type SaleItemResponse struct {
	ProductID       string           `json:"product_id"`
	Type            string           `json:"type"`
	Quantity        int              `json:"quantity"`
	UnitPrice       decimal.Decimal  `json:"unit_price"`
	Portions        int              `json:"portions,omitempty"`
	PricePerPortion *decimal.Decimal `json:"price_per_portion,omitempty"`
	CustomPrice     bool             `json:"custom_price,omitempty"`
}

// SaleGroupResponse grupo de líneas en respuestas.
type SaleGroupResponse struct {
	Name  string             `json:"name"`
	Items []SaleItemResponse `json:"items"`
}

// SaleResponse venta en respuestas.
type SaleResponse struct {
	ID         string              `json:"id"`
	ClubID     string              `json:"club_id"`
	EmployeeID string              `json:"employee_id"`
	ClientID   string              `json:"client_id,omitempty"`
	ItemGroups []SaleGroupResponse `json:"item_groups"`
	Total      decimal.Decimal     `json:"total"`
	Status     string              `json:"status"`
	CreatedAt  time.Time           `json:"created_at"`
}
