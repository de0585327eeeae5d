package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de gasto.
const (
	ExpensePurchase    = "purchase"    // compra de producto (impacta inventario)
	ExpenseOperational = "operational" // gasto operativo
	ExpenseProducto    = "producto"    // gasto derivado de un movimiento de compra
)

// Expense es un gasto del club. Para compras de producto el gasto acompaña a
// un movimiento de inventario tipo compra; el movimiento es la fuente de
// verdad del stock, el gasto solo registra el dinero.
type Expense struct {
	ID          string
	ClubID      string
	ProductID   string // opcional: solo para gastos de compra de producto
	Category    string
	Amount      decimal.Decimal
	Description string
	UserID      string
	Date        time.Time
}
