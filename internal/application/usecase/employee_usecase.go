package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/Gloweldev/ArximiaBackend/internal/application/dto"
	"github.com/Gloweldev/ArximiaBackend/internal/domain"
	"github.com/Gloweldev/ArximiaBackend/internal/domain/entity"
	"github.com/Gloweldev/ArximiaBackend/internal/domain/repository"
)

// EmployeeUseCase administración de empleados. El alta cuenta contra el
// límite de empleados de la suscripción del dueño.
type EmployeeUseCase struct {
	employeeRepo repository.EmployeeRepository
	userRepo     repository.UserRepository
}

// NewEmployeeUseCase construye el caso de uso de empleados.
func NewEmployeeUseCase(employeeRepo repository.EmployeeRepository, userRepo repository.UserRepository) *EmployeeUseCase {
	return &EmployeeUseCase{employeeRepo: employeeRepo, userRepo: userRepo}
}

// CheckLimit informa si el dueño puede dar de alta otro empleado.
func (uc *EmployeeUseCase) CheckLimit(ownerID string) (*dto.EmployeeLimitResponse, error) {
	owner, err := uc.userRepo.GetByID(ownerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domain.ErrUserNotFound
	}
	count, err := uc.employeeRepo.CountByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	max := owner.Subscription.MaxEmployees()
	return &dto.EmployeeLimitResponse{
		ExceedsLimit: count >= max,
		CurrentCount: count,
		MaxAllowed:   max,
	}, nil
}

// Create da de alta un empleado si la suscripción lo permite. La contraseña
// temporal se guarda hasheada con bcrypt.
func (uc *EmployeeUseCase) Create(ownerID string, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.ClubID == "" || in.Name == "" || in.Email == "" || in.Role == "" || in.TempPassword == "" {
		return nil, domain.ErrMissingField
	}
	limit, err := uc.CheckLimit(ownerID)
	if err != nil {
		return nil, err
	}
	if limit.ExceedsLimit {
		return nil, domain.ErrLimitReached
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.TempPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	goal := decimal.NewFromInt(1000)
	if in.SalesGoal != nil {
		goal = *in.SalesGoal
	}
	now := time.Now()
	emp := &entity.Employee{
		ID:               uuid.New().String(),
		OwnerID:          ownerID,
		ClubID:           in.ClubID,
		Name:             in.Name,
		Email:            in.Email,
		Phone:            in.Phone,
		Role:             in.Role,
		AvatarURL:        in.AvatarURL,
		TempPasswordHash: string(hash),
		Active:           true,
		SalesGoal:        goal,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.employeeRepo.Create(emp); err != nil {
		return nil, err
	}
	return toEmployeeResponse(emp), nil
}

// ListByOwner empleados del dueño.
func (uc *EmployeeUseCase) ListByOwner(ownerID string) ([]*dto.EmployeeResponse, error) {
	list, err := uc.employeeRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toEmployeeResponse(e))
	}
	return out, nil
}

// Update edita un empleado del dueño (incluye activar/desactivar).
func (uc *EmployeeUseCase) Update(id, ownerID string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	emp, err := uc.employeeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	if emp.OwnerID != ownerID {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		emp.Name = *in.Name
	}
	if in.Phone != nil {
		emp.Phone = *in.Phone
	}
	if in.Role != nil {
		emp.Role = *in.Role
	}
	if in.AvatarURL != nil {
		emp.AvatarURL = *in.AvatarURL
	}
	if in.Active != nil {
		emp.Active = *in.Active
	}
	if in.SalesGoal != nil {
		emp.SalesGoal = *in.SalesGoal
	}
	emp.UpdatedAt = time.Now()
	if err := uc.employeeRepo.Update(emp); err != nil {
		return nil, err
	}
	return toEmployeeResponse(emp), nil
}

// Delete elimina un empleado del dueño.
func (uc *EmployeeUseCase) Delete(id, ownerID string) error {
	emp, err := uc.employeeRepo.GetByID(id)
	if err != nil {
		return err
	}
	if emp == nil {
		return domain.ErrNotFound
	}
	if emp.OwnerID != ownerID {
		return domain.ErrForbidden
	}
	return uc.employeeRepo.Delete(id)
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	return &dto.EmployeeResponse{
		ID:         e.ID,
		OwnerID:    e.OwnerID,
		ClubID:     e.ClubID,
		Name:       e.Name,
		Email:      e.Email,
		Phone:      e.Phone,
		Role:       e.Role,
		AvatarURL:  e.AvatarURL,
		Active:     e.Active,
		SalesGoal:  e.SalesGoal,
		LastAccess: e.LastAccess,
		CreatedAt:  e.CreatedAt,
	}
}
