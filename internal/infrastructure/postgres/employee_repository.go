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

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación de empleados sobre PostgreSQL (usable con pool o tx).
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador de empleados. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

const employeeColumns = `
	id, owner_id, club_id, name, email, phone, role, avatar_url,
	temp_password_hash, password_changed, active, sales_goal, last_access, created_at, updated_at`

// Create inserta un empleado. ErrDuplicate si el email ya existe.
func (r *EmployeeRepo) Create(e *entity.Employee) error {
	query := `
		INSERT INTO employees
			(id, owner_id, club_id, name, email, phone, role, avatar_url,
			 temp_password_hash, password_changed, active, sales_goal, last_access, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.OwnerID, e.ClubID, e.Name, e.Email, e.Phone, e.Role, e.AvatarURL,
		e.TempPasswordHash, e.PasswordChanged, e.Active, e.SalesGoal, e.LastAccess,
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado. Devuelve nil si no existe.
func (r *EmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	query := `SELECT` + employeeColumns + ` FROM employees WHERE id = $1`
	e, err := scanEmployeeRow(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

// ListByOwner empleados de un dueño.
func (r *EmployeeRepo) ListByOwner(ownerID string) ([]*entity.Employee, error) {
	query := `SELECT` + employeeColumns + ` FROM employees WHERE owner_id = $1 ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		e, err := scanEmployeeRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// CountByOwner cuenta los empleados activos de un dueño (chequeo de límite de plan).
func (r *EmployeeRepo) CountByOwner(ownerID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM employees WHERE owner_id = $1 AND active = true`, ownerID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count employees: %w", err)
	}
	return n, nil
}

// Update actualiza los datos del empleado.
func (r *EmployeeRepo) Update(e *entity.Employee) error {
	query := `
		UPDATE employees SET
			club_id = $2, name = $3, phone = $4, role = $5, avatar_url = $6,
			temp_password_hash = $7, password_changed = $8, active = $9,
			sales_goal = $10, last_access = $11, updated_at = $12
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		e.ID, e.ClubID, e.Name, e.Phone, e.Role, e.AvatarURL,
		e.TempPasswordHash, e.PasswordChanged, e.Active,
		e.SalesGoal, e.LastAccess, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un empleado.
func (r *EmployeeRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanEmployeeRow(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	err := row.Scan(
		&e.ID, &e.OwnerID, &e.ClubID, &e.Name, &e.Email, &e.Phone, &e.Role, &e.AvatarURL,
		&e.TempPasswordHash, &e.PasswordChanged, &e.Active, &e.SalesGoal, &e.LastAccess,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}
