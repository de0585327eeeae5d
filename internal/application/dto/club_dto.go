package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// ClubContactDTO contacto del club.
type ClubContactDTO struct {
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// CreateClubRequest body para POST /api/clubs.
type CreateClubRequest struct {
	Name           string          `json:"name"`
	Address        string          `json:"address,omitempty"`
	MonthlyGoal    decimal.Decimal `json:"monthly_goal,omitempty"`
	Schedule       json.RawMessage `json:"schedule,omitempty"`
	PaymentMethods []string        `json:"payment_methods,omitempty"`
	Contact        ClubContactDTO  `json:"contact,omitempty"`
	ImageURL       string          `json:"image_url,omitempty"`
}

// UpdateClubRequest body para PUT /api/clubs/:id.
type UpdateClubRequest struct {
	Name           *string          `json:"name,omitempty"`
	Address        *string          `json:"address,omitempty"`
	MonthlyGoal    *decimal.Decimal `json:"monthly_goal,omitempty"`
	Schedule       json.RawMessage  `json:"schedule,omitempty"`
	PaymentMethods []string         `json:"payment_methods,omitempty"`
	Contact        *ClubContactDTO  `json:"contact,omitempty"`
	ImageURL       *string          `json:"image_url,omitempty"`
}

// ClubResponse club en respuestas.
type ClubResponse struct {
	ID             string          `json:"id"`
	OwnerID        string          `json:"owner_id"`
	Name           string          `json:"name"`
	Address        string          `json:"address,omitempty"`
	MonthlyGoal    decimal.Decimal `json:"monthly_goal"`
	Schedule       json.RawMessage `json:"schedule,omitempty"`
	PaymentMethods []string        `json:"payment_methods,omitempty"`
	Contact        ClubContactDTO  `json:"contact"`
	ImageURL       string          `json:"image_url,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}
