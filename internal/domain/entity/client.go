package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de cliente.
const (
	ClientRegular    = "regular"
	ClientWholesale  = "wholesale"
	ClientOccasional = "occasional"
)

// Client es un cliente del club. TotalSpent, VisitCount y LastPurchase los
// actualiza el registro de ventas.
type Client struct {
	ID           string
	ClubID       string
	Name         string
	Email        string
	Phone        string
	Type         string
	TotalSpent   decimal.Decimal
	VisitCount   int
	LastPurchase *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
