package usecase

import (
	"time"

	"github.com/Gloweldev/ArximiaBackend/internal/application/auth"
	"github.com/Gloweldev/ArximiaBackend/internal/application/dto"
	"github.com/Gloweldev/ArximiaBackend/internal/domain"
	"github.com/Gloweldev/ArximiaBackend/internal/domain/entity"
	"github.com/Gloweldev/ArximiaBackend/internal/domain/repository"
)

// AccountUseCase configuración de la cuenta del dueño: onboarding inicial,
// umbral de inventario ideal y cambios de plan.
type AccountUseCase struct {
	userRepo repository.UserRepository
	clubUC   *ClubUseCase
}

// NewAccountUseCase construye el caso de uso de cuenta.
func NewAccountUseCase(userRepo repository.UserRepository, clubUC *ClubUseCase) *AccountUseCase {
	return &AccountUseCase{userRepo: userRepo, clubUC: clubUC}
}

// GetProfile usuario autenticado.
func (uc *AccountUseCase) GetProfile(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return auth.ToUserResponse(user), nil
}

// CompleteOnboarding crea el club principal y fija la configuración operativa
// de la cuenta. Idempotente: si el onboarding ya se completó retorna
// ErrConflict sin tocar nada.
func (uc *AccountUseCase) CompleteOnboarding(userID string, in dto.OnboardingRequest) (*dto.UserResponse, error) {
	if in.ClubName == "" {
		return nil, domain.ErrMissingField
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.OnboardingCompleted {
		return nil, domain.ErrConflict
	}

	club, err := uc.clubUC.Create(userID, dto.CreateClubRequest{
		Name:        in.ClubName,
		Address:     in.Address,
		MonthlyGoal: in.MonthlyGoal,
	})
	if err != nil {
		return nil, err
	}

	// ClubUseCase.Create ya fijó PrincipalClubID; releer para no pisarlo.
	user, err = uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.PrincipalClubID == "" {
		user.PrincipalClubID = club.ID
	}
	if in.DisplayName != "" {
		user.DisplayName = in.DisplayName
	}
	if in.IdealStock > 0 {
		user.IdealStock = in.IdealStock
	}
	user.OnboardingCompleted = true
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// UpdateIdealStock cambia el umbral de stock ideal de la cuenta (mínimo 1).
// Solo afecta la clasificación critical/low/normal, nunca bloquea ventas.
func (uc *AccountUseCase) UpdateIdealStock(userID string, in dto.UpdateIdealStockRequest) (*dto.UserResponse, error) {
	if in.IdealStock < 1 {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	user.IdealStock = in.IdealStock
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// ChangePlan cambia el plan de suscripción. Los límites y el precio derivan
// siempre del plan; volver a "prueba" con el trial consumido no está
// permitido.
func (uc *AccountUseCase) ChangePlan(userID string, in dto.ChangePlanRequest) (*dto.UserResponse, error) {
	switch in.Plan {
	case entity.PlanBasico, entity.PlanIntermedio, entity.PlanPremium, entity.PlanPersonalizado:
	case entity.PlanPrueba:
		return nil, domain.ErrInvalidInput
	default:
		return nil, domain.ErrInvalidInput
	}
	if in.ExtraClubs < 0 || in.ExtraEmployees < 0 {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	sub := user.Subscription
	sub.Plan = in.Plan
	sub.StartDate = time.Now()
	sub.ExtraClubs = in.ExtraClubs
	sub.ExtraEmployees = in.ExtraEmployees
	sub.TrialUsed = true
	sub.ApplyPlan()
	user.Subscription = sub
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}
