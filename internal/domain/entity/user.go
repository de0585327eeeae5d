package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Planes de suscripción.
const (
	PlanPrueba        = "prueba"
	PlanBasico        = "basico"
	PlanIntermedio    = "intermedio"
	PlanPremium       = "premium"
	PlanPersonalizado = "personalizado"
)

// TrialDays duración de la prueba gratuita.
const TrialDays = 3

// Subscription define la capacidad de la cuenta: cuántos clubs y empleados
// permite el plan. El cobro es externo; aquí solo vive el chequeo de límites.
type Subscription struct {
	Plan           string
	StartDate      time.Time
	ExpiresAt      *time.Time
	ClubsMax       int
	EmployeesMax   int
	ExtraClubs     int
	ExtraEmployees int
	Price          decimal.Decimal // precio mensual
	TrialUsed      bool
}

// ApplyPlan normaliza límites y precio según el plan elegido. Equivale al
// hook pre-guardado del aggregate de usuario: los límites nunca se fijan a
// mano, siempre derivan del plan.
func (s *Subscription) ApplyPlan() {
	switch s.Plan {
	case PlanPrueba:
		if !s.TrialUsed {
			exp := s.StartDate.Add(TrialDays * 24 * time.Hour)
			s.ExpiresAt = &exp
			s.ClubsMax = 1
			s.EmployeesMax = 2
			s.Price = decimal.Zero
		}
	case PlanBasico:
		s.ExpiresAt = nil
		s.ClubsMax = 1
		s.EmployeesMax = 2
		s.Price = decimal.NewFromInt(110)
	case PlanIntermedio:
		s.ExpiresAt = nil
		s.ClubsMax = 2
		s.EmployeesMax = 4
		s.Price = decimal.NewFromInt(150)
	case PlanPremium:
		s.ExpiresAt = nil
		s.ClubsMax = 3
		s.EmployeesMax = 10
		s.Price = decimal.NewFromInt(200)
	case PlanPersonalizado:
		s.ExpiresAt = nil
		s.ClubsMax = 1
		s.EmployeesMax = 2
		s.Price = decimal.NewFromInt(100).
			Add(decimal.NewFromInt(int64(s.ExtraClubs) * 50)).
			Add(decimal.NewFromInt(int64(s.ExtraEmployees) * 20))
	}
	if s.Plan != PlanPersonalizado {
		s.ExtraClubs = 0
		s.ExtraEmployees = 0
	}
}

// MaxClubs límite efectivo de clubs (plan + extras contratados).
func (s *Subscription) MaxClubs() int {
	return s.ClubsMax + s.ExtraClubs
}

// MaxEmployees límite efectivo de empleados.
func (s *Subscription) MaxEmployees() int {
	return s.EmployeesMax + s.ExtraEmployees
}

// User es el dueño de la cuenta (multi-club). IdealStock es configuración a
// nivel de cuenta usada solo para clasificar el estado del stock
// (critical/low/normal); nunca bloquea operaciones.
type User struct {
	ID                  string
	Name                string
	DisplayName         string
	Email               string
	PasswordHash        string
	Role                string
	Subscription        Subscription
	PrincipalClubID     string // opcional
	IdealStock          int    // mínimo 1, por defecto 5
	OnboardingCompleted bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// DefaultIdealStock umbral por defecto cuando el usuario no configuró uno.
const DefaultIdealStock = 5
