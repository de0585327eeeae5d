package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterRequest body para POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SubscriptionDTO capacidad de la cuenta en respuestas.
type SubscriptionDTO struct {
	Plan         string          `json:"plan"`
	StartDate    time.Time       `json:"start_date"`
	ExpiresAt    *time.Time      `json:"expires_at,omitempty"`
	ClubsMax     int             `json:"clubs_max"`
	EmployeesMax int             `json:"employees_max"`
	Price        decimal.Decimal `json:"price"`
}

// UserResponse usuario en respuestas (nunca incluye el hash).
type UserResponse struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	DisplayName         string          `json:"display_name,omitempty"`
	Email               string          `json:"email"`
	Role                string          `json:"role"`
	Subscription        SubscriptionDTO `json:"subscription"`
	PrincipalClubID     string          `json:"principal_club_id,omitempty"`
	IdealStock          int             `json:"ideal_stock"`
	OnboardingCompleted bool            `json:"onboarding_completed"`
	CreatedAt           time.Time       `json:"created_at"`
}

// LoginResponse token + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// OnboardingRequest body para POST /api/onboarding: crea el club principal y
// fija la configuración operativa de la cuenta (incluido el inventario ideal).
type OnboardingRequest struct {
	ClubName    string          `json:"club_name"`
	Address     string          `json:"address,omitempty"`
	DisplayName string          `json:"display_name,omitempty"`
	MonthlyGoal decimal.Decimal `json:"monthly_goal,omitempty"`
	IdealStock  int             `json:"ideal_stock,omitempty"`
}

// UpdateIdealStockRequest body para PUT /api/users/ideal-stock.
type UpdateIdealStockRequest struct {
	IdealStock int `json:"ideal_stock"`
}

// ChangePlanRequest body para PUT /api/subscription.
type ChangePlanRequest struct {
	Plan           string `json:"plan"`
	ExtraClubs     int    `json:"extra_clubs,omitempty"`
	ExtraEmployees int    `json:"extra_employees,omitempty"`
}
