package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// ClubContact datos de contacto del club.
type ClubContact struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Club es la unidad de multi-tenancy: todo inventario, movimiento, venta y
// gasto está particionado por club.
type Club struct {
	ID             string
	OwnerID        string
	Name           string
	Address        string
	MonthlyGoal    decimal.Decimal
	Schedule       json.RawMessage // horarios por día de la semana
	PaymentMethods []string        // cash, card, transfer
	Contact        ClubContact
	ImageURL       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
