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

var _ repository.ClubRepository = (*ClubRepo)(nil)

// ClubRepo implementación de clubs sobre PostgreSQL (usable con pool o tx).
// Schedule se guarda como JSONB opaco y payment_methods como text[].
type ClubRepo struct {
	q Querier
}

// NewClubRepository construye el adaptador de clubs. Pasar pool o tx (Querier).
func NewClubRepository(q Querier) *ClubRepo {
	return &ClubRepo{q: q}
}

const clubColumns = `
	id, owner_id, name, address, monthly_goal, schedule, payment_methods,
	contact_phone, contact_email, image_url, created_at, updated_at`

// Create inserta un club.
func (r *ClubRepo) Create(c *entity.Club) error {
	query := `
		INSERT INTO clubs
			(id, owner_id, name, address, monthly_goal, schedule, payment_methods,
			 contact_phone, contact_email, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.OwnerID, c.Name, c.Address, c.MonthlyGoal, []byte(c.Schedule), c.PaymentMethods,
		c.Contact.Phone, c.Contact.Email, c.ImageURL, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create club: %w", err)
	}
	return nil
}

// GetByID obtiene un club. Devuelve nil si no existe.
func (r *ClubRepo) GetByID(id string) (*entity.Club, error) {
	query := `SELECT` + clubColumns + ` FROM clubs WHERE id = $1`
	c, err := scanClubRow(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get club: %w", err)
	}
	return c, nil
}

// ListByOwner clubs de un dueño.
func (r *ClubRepo) ListByOwner(ownerID string) ([]*entity.Club, error) {
	query := `SELECT` + clubColumns + ` FROM clubs WHERE owner_id = $1 ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list clubs: %w", err)
	}
	defer rows.Close()
	var list []*entity.Club
	for rows.Next() {
		c, err := scanClubRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan club: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// CountByOwner cuenta los clubs de un dueño (chequeo de límite de plan).
func (r *ClubRepo) CountByOwner(ownerID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM clubs WHERE owner_id = $1`, ownerID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count clubs: %w", err)
	}
	return n, nil
}

// Update actualiza los datos del club.
func (r *ClubRepo) Update(c *entity.Club) error {
	query := `
		UPDATE clubs SET
			name = $2, address = $3, monthly_goal = $4, schedule = $5,
			payment_methods = $6, contact_phone = $7, contact_email = $8,
			image_url = $9, updated_at = $10
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.Address, c.MonthlyGoal, []byte(c.Schedule),
		c.PaymentMethods, c.Contact.Phone, c.Contact.Email,
		c.ImageURL, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update club: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanClubRow(row pgx.Row) (*entity.Club, error) {
	var c entity.Club
	var schedule []byte
	err := row.Scan(
		&c.ID, &c.OwnerID, &c.Name, &c.Address, &c.MonthlyGoal, &schedule, &c.PaymentMethods,
		&c.Contact.Phone, &c.Contact.Email, &c.ImageURL, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	c.Schedule = schedule
	return &c, nil
}
