package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta.
const (
	SaleCompleted = "completed"
	SaleCancelled = "cancelled"
)

// SaleItem es una línea de venta. Type decide el eje de stock a afectar:
// sealed descuenta unidades selladas, prepared descuenta porciones.
type SaleItem struct {
	ProductID       string
	Type            string // sealed, prepared
	Quantity        int
	UnitPrice       decimal.Decimal
	Portions        int              // porciones vendidas (prepared)
	PricePerPortion *decimal.Decimal // precio aplicado por porción (prepared)
	CustomPrice     bool
}

// SaleGroup agrupa líneas bajo un nombre (ej. "Barra", "Mesa 2").
type SaleGroup struct {
	Name  string
	Items []SaleItem
}

// Sale es una venta completada de uno o más ítems. El descuento de stock por
// línea lo realiza el motor de movimientos; la venta solo se persiste si
// todas las líneas pudieron descontarse.
type Sale struct {
	ID         string
	ClubID     string
	EmployeeID string
	ClientID   string // opcional
	ItemGroups []SaleGroup
	Total      decimal.Decimal
	Status     string
	CreatedAt  time.Time
}
