package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/inventory/movement.
// PurchasePrice opcional: en compras genera además un gasto por
// quantity × purchase_price.
type RegisterMovementRequest struct {
	ProductID     string           `json:"product_id"`
	ClubID        string           `json:"club_id"`
	Type          string           `json:"type"` // venta, uso, compra, ajuste
	Unit          string           `json:"unit"` // sealed, portion
	Quantity      int              `json:"quantity"`
	Description   string           `json:"description,omitempty"`
	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty"`
}

// RebuildRequest body para POST /api/inventory/rebuild.
type RebuildRequest struct {
	ProductID string `json:"product_id"`
	ClubID    string `json:"club_id"`
}

// PreparationDTO sub-registro de preparación en respuestas.
type PreparationDTO struct {
	Units           int              `json:"units"`
	PortionsPerUnit int              `json:"portions_per_unit"`
	CurrentPortions int              `json:"current_portions"`
	PortionPrice    *decimal.Decimal `json:"portion_price,omitempty"`
	PortionSize     string           `json:"portion_size,omitempty"`
}

// InventoryRecordResponse registro de inventario en respuestas.
type InventoryRecordResponse struct {
	ID          string         `json:"id"`
	ProductID   string         `json:"product_id"`
	ClubID      string         `json:"club_id"`
	Sealed      int            `json:"sealed"`
	Preparation PreparationDTO `json:"preparation"`
	UpdatedAt   time.Time      `json:"updated_at"`
	Created     bool           `json:"created,omitempty"` // true si el registro se inicializó en esta llamada
}

// StockItemResponse fila del inventario de un club con estados por eje.
type StockItemResponse struct {
	Record         InventoryRecordResponse `json:"record"`
	Product        *ProductResponse        `json:"product,omitempty"`
	SealedStatus   string                  `json:"sealed_status"`
	PortionsStatus string                  `json:"portions_status"`
}

// MovementResponse entrada del historial de movimientos.
type MovementResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ClubID      string    `json:"club_id"`
	Type        string    `json:"type"`
	Unit        string    `json:"unit"`
	Quantity    int       `json:"quantity"`
	Description string    `json:"description,omitempty"`
	UserID      string    `json:"user_id"`
	Date        time.Time `json:"date"`
}
