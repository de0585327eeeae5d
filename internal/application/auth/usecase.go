package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Gloweldev/ArximiaBackend/internal/application/dto"
	"github.com/Gloweldev/ArximiaBackend/internal/domain"
	"github.com/Gloweldev/ArximiaBackend/internal/domain/entity"
	"github.com/Gloweldev/ArximiaBackend/internal/domain/repository"
	"github.com/Gloweldev/ArximiaBackend/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticación: registro y login de dueños de
// cuenta. La emisión de sesión es opaca para el resto del sistema: los
// handlers solo ven un principal autenticado (user_id + role).
type UseCase struct {
	userRepo          repository.UserRepository
	jwtCfg            JWTConfig
	defaultIdealStock int
}

// NewUseCase construye el caso de uso de auth. defaultIdealStock es el
// umbral inicial de las cuentas nuevas; en cero usa el default del dominio.
func NewUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, defaultIdealStock int) *UseCase {
	if defaultIdealStock <= 0 {
		defaultIdealStock = entity.DefaultIdealStock
	}
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg, defaultIdealStock: defaultIdealStock}
}

// Register crea un usuario con suscripción de prueba: hashea el password con
// bcrypt y aplica las reglas del plan. ErrEmailAlreadyExists si el email ya
// está registrado.
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" || in.Name == "" {
		return nil, domain.ErrMissingField
	}
	existing, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	sub := entity.Subscription{Plan: entity.PlanPrueba, StartDate: now}
	sub.ApplyPlan()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         "admin",
		Subscription: sub,
		IdealStock:   uc.defaultIdealStock,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Login verifica email/password, genera el JWT y retorna token + usuario.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *ToUserResponse(user)}, nil
}

// ToUserResponse proyecta un usuario a DTO (sin hash de contraseña).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		DisplayName: u.DisplayName,
		Email:       u.Email,
		Role:        u.Role,
		Subscription: dto.SubscriptionDTO{
			Plan:         u.Subscription.Plan,
			StartDate:    u.Subscription.StartDate,
			ExpiresAt:    u.Subscription.ExpiresAt,
			ClubsMax:     u.Subscription.MaxClubs(),
			EmployeesMax: u.Subscription.MaxEmployees(),
			Price:        u.Subscription.Price,
		},
		PrincipalClubID:     u.PrincipalClubID,
		IdealStock:          u.IdealStock,
		OnboardingCompleted: u.OnboardingCompleted,
		CreatedAt:           u.CreatedAt,
	}
}
