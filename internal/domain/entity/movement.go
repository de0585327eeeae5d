package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementVenta  = "venta"  // salida por venta
	MovementUso    = "uso"    // consumo sin venta (solo porciones)
	MovementCompra = "compra" // entrada por compra
	MovementAjuste = "ajuste" // corrección manual
)

// Unidades sobre las que opera un movimiento.
const (
	UnitSealed  = "sealed"  // unidades selladas
	UnitPortion = "portion" // porciones de preparación
)

// Movement es una entrada del log de movimientos: registro inmutable de cada
// evento que afecta stock. Nunca se actualiza ni se borra; una corrección se
// expresa con un movimiento compensatorio (ajuste), no con un delete.
// Quantity siempre es positivo; la dirección la implica el tipo.
type Movement struct {
	ID          string
	ProductID   string
	ClubID      string
	Type        string // venta, uso, compra, ajuste
	Unit        string // sealed, portion
	Quantity    int
	Description string
	UserID      string
	Date        time.Time
}
