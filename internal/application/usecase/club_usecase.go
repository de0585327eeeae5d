package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/Gloweldev/ArximiaBackend/internal/application/dto"
	"github.com/Gloweldev/ArximiaBackend/internal/domain"
	"github.com/Gloweldev/ArximiaBackend/internal/domain/entity"
	"github.com/Gloweldev/ArximiaBackend/internal/domain/repository"
)

// ClubUseCase administración de clubs (tenants). El alta verifica la
// capacidad de la suscripción del dueño: chequeo de capacidad, no facturación.
type ClubUseCase struct {
	clubRepo repository.ClubRepository
	userRepo repository.UserRepository
}

// NewClubUseCase construye el caso de uso de clubs.
func NewClubUseCase(clubRepo repository.ClubRepository, userRepo repository.UserRepository) *ClubUseCase {
	return &ClubUseCase{clubRepo: clubRepo, userRepo: userRepo}
}

// Create crea un club si la suscripción lo permite (ErrLimitReached si no).
// El primer club del dueño queda como club principal.
func (uc *ClubUseCase) Create(ownerID string, in dto.CreateClubRequest) (*dto.ClubResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrMissingField
	}
	owner, err := uc.userRepo.GetByID(ownerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domain.ErrUserNotFound
	}
	count, err := uc.clubRepo.CountByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if count >= owner.Subscription.MaxClubs() {
		return nil, domain.ErrLimitReached
	}

	now := time.Now()
	club := &entity.Club{
		ID:             uuid.New().String(),
		OwnerID:        ownerID,
		Name:           in.Name,
		Address:        in.Address,
		MonthlyGoal:    in.MonthlyGoal,
		Schedule:       in.Schedule,
		PaymentMethods: in.PaymentMethods,
		Contact:        entity.ClubContact{Phone: in.Contact.Phone, Email: in.Contact.Email},
		ImageURL:       in.ImageURL,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.clubRepo.Create(club); err != nil {
		return nil, err
	}

	if owner.PrincipalClubID == "" {
		owner.PrincipalClubID = club.ID
		owner.UpdatedAt = now
		if err := uc.userRepo.Update(owner); err != nil {
			return nil, err
		}
	}
	return toClubResponse(club), nil
}

// GetByID obtiene un club del dueño autenticado.
func (uc *ClubUseCase) GetByID(id, ownerID string) (*dto.ClubResponse, error) {
	club, err := uc.clubRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if club == nil {
		return nil, domain.ErrNotFound
	}
	if club.OwnerID != ownerID {
		return nil, domain.ErrForbidden
	}
	return toClubResponse(club), nil
}

// ListByOwner clubs del dueño.
func (uc *ClubUseCase) ListByOwner(ownerID string) ([]*dto.ClubResponse, error) {
	list, err := uc.clubRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClubResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toClubResponse(c))
	}
	return out, nil
}

// Update edita los datos del club (solo su dueño).
func (uc *ClubUseCase) Update(id, ownerID string, in dto.UpdateClubRequest) (*dto.ClubResponse, error) {
	club, err := uc.clubRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if club == nil {
		return nil, domain.ErrNotFound
	}
	if club.OwnerID != ownerID {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		club.Name = *in.Name
	}
	if in.Address != nil {
		club.Address = *in.Address
	}
	if in.MonthlyGoal != nil {
		club.MonthlyGoal = *in.MonthlyGoal
	}
	if in.Schedule != nil {
		club.Schedule = in.Schedule
	}
	if in.PaymentMethods != nil {
		club.PaymentMethods = in.PaymentMethods
	}
	if in.Contact != nil {
		club.Contact = entity.ClubContact{Phone: in.Contact.Phone, Email: in.Contact.Email}
	}
	if in.ImageURL != nil {
		club.ImageURL = *in.ImageURL
	}
	club.UpdatedAt = time.Now()
	if err := uc.clubRepo.Update(club); err != nil {
		return nil, err
	}
	return toClubResponse(club), nil
}

func toClubResponse(c *entity.Club) *dto.ClubResponse {
	if c == nil {
		return nil
	}
	return &dto.ClubResponse{
		ID:             c.ID,
		OwnerID:        c.OwnerID,
		Name:           c.Name,
		Address:        c.Address,
		MonthlyGoal:    c.MonthlyGoal,
		Schedule:       c.Schedule,
		PaymentMethods: c.PaymentMethods,
		Contact:        dto.ClubContactDTO{Phone: c.Contact.Phone, Email: c.Contact.Email},
		ImageURL:       c.ImageURL,
		CreatedAt:      c.CreatedAt,
	}
}
