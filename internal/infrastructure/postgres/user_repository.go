package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Gloweldev/ArximiaBackend/internal/domain"
	"github.com/Gloweldev/ArximiaBackend/internal/domain/entity"
	"github.com/Gloweldev/ArximiaBackend/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación de usuarios sobre PostgreSQL (usable con pool o tx).
// La suscripción vive embebida en la fila del usuario: se lee y escribe
// siempre junta con él.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `
	id, name, display_name, email, password_hash, role,
	sub_plan, sub_start_date, sub_expires_at, sub_clubs_max, sub_employees_max,
	sub_extra_clubs, sub_extra_employees, sub_price, sub_trial_used,
	principal_club_id, ideal_stock, onboarding_completed, created_at, updated_at`

// Create inserta un usuario. ErrEmailAlreadyExists si el email ya existe.
func (r *UserRepo) Create(u *entity.User) error {
	query := `
		INSERT INTO users
			(id, name, display_name, email, password_hash, role,
			 sub_plan, sub_start_date, sub_expires_at, sub_clubs_max, sub_employees_max,
			 sub_extra_clubs, sub_extra_employees, sub_price, sub_trial_used,
			 principal_club_id, ideal_stock, onboarding_completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Name, u.DisplayName, u.Email, u.PasswordHash, u.Role,
		u.Subscription.Plan, u.Subscription.StartDate, u.Subscription.ExpiresAt,
		u.Subscription.ClubsMax, u.Subscription.EmployeesMax,
		u.Subscription.ExtraClubs, u.Subscription.ExtraEmployees,
		u.Subscription.Price, u.Subscription.TrialUsed,
		nullIfEmpty(u.PrincipalClubID), u.IdealStock, u.OnboardingCompleted,
		u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario. Devuelve nil si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `SELECT` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUserRow(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// FindByEmail busca un usuario por email. Devuelve nil si no existe.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	query := `SELECT` + userColumns + ` FROM users WHERE email = $1`
	u, err := scanUserRow(r.q.QueryRow(context.Background(), query, email))
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return u, nil
}

// Update actualiza el usuario completo (incluida la suscripción embebida).
func (r *UserRepo) Update(u *entity.User) error {
	query := `
		UPDATE users SET
			name = $2, display_name = $3, role = $4,
			sub_plan = $5, sub_start_date = $6, sub_expires_at = $7,
			sub_clubs_max = $8, sub_employees_max = $9,
			sub_extra_clubs = $10, sub_extra_employees = $11, sub_price = $12, sub_trial_used = $13,
			principal_club_id = $14, ideal_stock = $15, onboarding_completed = $16, updated_at = $17
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		u.ID, u.Name, u.DisplayName, u.Role,
		u.Subscription.Plan, u.Subscription.StartDate, u.Subscription.ExpiresAt,
		u.Subscription.ClubsMax, u.Subscription.EmployeesMax,
		u.Subscription.ExtraClubs, u.Subscription.ExtraEmployees,
		u.Subscription.Price, u.Subscription.TrialUsed,
		nullIfEmpty(u.PrincipalClubID), u.IdealStock, u.OnboardingCompleted, u.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func scanUserRow(row pgx.Row) (*entity.User, error) {
	var u entity.User
	var principalClubID *string
	err := row.Scan(
		&u.ID, &u.Name, &u.DisplayName, &u.Email, &u.PasswordHash, &u.Role,
		&u.Subscription.Plan, &u.Subscription.StartDate, &u.Subscription.ExpiresAt,
		&u.Subscription.ClubsMax, &u.Subscription.EmployeesMax,
		&u.Subscription.ExtraClubs, &u.Subscription.ExtraEmployees,
		&u.Subscription.Price, &u.Subscription.TrialUsed,
		&principalClubID, &u.IdealStock, &u.OnboardingCompleted,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if principalClubID != nil {
		u.PrincipalClubID = *principalClubID
	}
	return &u, nil
}
