package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee es un colaborador de un club. Su alta cuenta contra el límite de
// empleados de la suscripción del dueño.
type Employee struct {
	ID               string
	OwnerID          string
	ClubID           string
	Name             string
	Email            string
	Phone            string
	Role             string
	AvatarURL        string
	TempPasswordHash string
	PasswordChanged  bool
	Active           bool
	SalesGoal        decimal.Decimal
	LastAccess       *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
