package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest body para POST /api/employees. TempPassword se
// entrega al empleado fuera de banda; se guarda hasheada.
type CreateEmployeeRequest struct {
	ClubID       string           `json:"club_id"`
	Name         string           `json:"name"`
	Email        string           `json:"email"`
	Phone        string           `json:"phone,omitempty"`
	Role         string           `json:"role"`
	AvatarURL    string           `json:"avatar_url,omitempty"`
	TempPassword string           `json:"temp_password"`
	SalesGoal    *decimal.Decimal `json:"sales_goal,omitempty"`
}

// UpdateEmployeeRequest body para PUT /api/employees/:id.
type UpdateEmployeeRequest struct {
	Name      *string          `json:"name,omitempty"`
	Phone     *string          `json:"phone,omitempty"`
	Role      *string          `json:"role,omitempty"`
	AvatarURL *string          `json:"avatar_url,omitempty"`
	Active    *bool            `json:"active,omitempty"`
	SalesGoal *decimal.Decimal `json:"sales_goal,omitempty"`
}

// EmployeeResponse empleado en respuestas (nunca incluye la contraseña).
type EmployeeResponse struct {
	ID         string          `json:"id"`
	OwnerID    string          `json:"owner_id"`
	ClubID     string          `json:"club_id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone,omitempty"`
	Role       string          `json:"role"`
	AvatarURL  string          `json:"avatar_url,omitempty"`
	Active     bool            `json:"active"`
	SalesGoal  decimal.Decimal `json:"sales_goal"`
	LastAccess *time.Time      `json:"last_access,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// EmployeeLimitResponse respuesta de GET /api/employees/check-limit.
type EmployeeLimitResponse struct {
	ExceedsLimit bool `json:"exceeds_limit"`
	CurrentCount int  `json:"current_count"`
	MaxAllowed   int  `json:"max_allowed"`
}
