package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterExpenseRequest body para POST /api/expenses. Para category
// "purchase" se requieren product_id, quantity y unit: el gasto va acompañado
// de un movimiento de compra sobre el inventario.
type RegisterExpenseRequest struct {
	ClubID      string          `json:"club_id"`
	Category    string          `json:"category"` // purchase, operational
	ProductID   string          `json:"product_id,omitempty"`
	Quantity    int             `json:"quantity,omitempty"`
	Unit        string          `json:"unit,omitempty"` // sealed, portion
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

// ExpenseResponse gasto en respuestas.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	ClubID      string          `json:"club_id"`
	ProductID   string          `json:"product_id,omitempty"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	UserID      string          `json:"user_id"`
	Date        time.Time       `json:"date"`
}

// ExpenseKPIsResponse totales del mes actual contra el anterior.
type ExpenseKPIsResponse struct {
	CurrentMonthTotal  decimal.Decimal `json:"current_month_total"`
	PreviousMonthTotal decimal.Decimal `json:"previous_month_total"`
	ChangePercent      decimal.Decimal `json:"change_percent"`
}
