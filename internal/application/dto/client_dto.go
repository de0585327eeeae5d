package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateClientRequest body para POST /api/clients.
type CreateClientRequest struct {
	ClubID string `json:"club_id"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Type   string `json:"type,omitempty"` // regular, wholesale, occasional
}

// UpdateClientRequest body para PUT /api/clients/:id.
type UpdateClientRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Type  *string `json:"type,omitempty"`
}

// ClientResponse cliente en respuestas.
type ClientResponse struct {
	ID           string          `json:"id"`
	ClubID       string          `json:"club_id"`
	Name         string          `json:"name"`
	Email        string          `json:"email,omitempty"`
	Phone        string          `json:"phone,omitempty"`
	Type         string          `json:"type"`
	TotalSpent   decimal.Decimal `json:"total_spent"`
	VisitCount   int             `json:"visit_count"`
	LastPurchase *time.Time      `json:"last_purchase,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}
