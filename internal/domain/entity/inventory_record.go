package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Preparation es el sub-registro de stock por porciones: envases asignados a
// preparación y porciones servibles restantes entre ellos.
type Preparation struct {
	Units           int              // envases abiertos/asignados
	PortionsPerUnit int              // porciones por envase (sembrado del catálogo al crear)
	CurrentPortions int              // porciones disponibles
	PortionPrice    *decimal.Decimal // precio por porción (informativo)
	PortionSize     string           // tamaño de la porción
}

// InventoryRecord mantiene el stock actual de un producto en un club: un
// registro por par (producto, club). Los saldos Sealed y
// Preparation.CurrentPortions son una proyección materializada del log de
// movimientos, mantenida incrementalmente por el motor de mutación.
// Invariante: Sealed >= 0 y Preparation.CurrentPortions >= 0 en todo momento.
type InventoryRecord struct {
	ID          string
	ProductID   string
	ClubID      string
	Sealed      int
	Preparation Preparation
	UpdatedAt   time.Time
}

// NewInventoryRecord crea un registro con saldos en cero. portionsPerUnit se
// siembra desde el catálogo en el momento de creación y no se re-sincroniza.
func NewInventoryRecord(id, productID, clubID string, portionsPerUnit int, now time.Time) *InventoryRecord {
	return &InventoryRecord{
		ID:        id,
		ProductID: productID,
		ClubID:    clubID,
		Sealed:    0,
		Preparation: Preparation{
			Units:           0,
			PortionsPerUnit: portionsPerUnit,
			CurrentPortions: 0,
		},
		UpdatedAt: now,
	}
}
