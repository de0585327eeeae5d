package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Formas de venta de un producto.
const (
	ProductSealed   = "sealed"   // unidades selladas completas
	ProductPrepared = "prepared" // se vende por porciones preparadas
	ProductBoth     = "both"     // ambas modalidades, stock independiente por eje
)

// Product representa un producto del catálogo de un club.
// Archived es borrado suave: se excluye de búsqueda y venta pero se conserva
// para reportes históricos.
type Product struct {
	ID            string
	ClubID        string
	UserID        string
	Type          string // sealed, prepared, both
	Name          string
	Brand         string
	Category      string
	Flavor        string
	ImageURL      string
	Portions      int              // porciones por envase (prepared/both)
	PortionSize   string           // ej. "25g", "150ml"
	PortionPrice  *decimal.Decimal // precio por porción (prepared/both)
	SalePrice     *decimal.Decimal // precio de venta por unidad sellada (sealed/both)
	PurchasePrice decimal.Decimal  // precio de compra (común)
	Archived      bool
	CreatedAt     time.Time
}

// SellsSealed indica si el producto maneja stock de unidades selladas.
func (p *Product) SellsSealed() bool {
	return p.Type == ProductSealed || p.Type == ProductBoth
}

// SellsPortions indica si el producto maneja stock de preparación.
func (p *Product) SellsPortions() bool {
	return p.Type == ProductPrepared || p.Type == ProductBoth
}
