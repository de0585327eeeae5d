package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Gloweldev/ArximiaBackend/internal/domain"
	"github.com/Gloweldev/ArximiaBackend/internal/domain/entity"
	"github.com/Gloweldev/ArximiaBackend/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de clientes sobre PostgreSQL (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador de clientes. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColumns = `
	id, club_id, name, email, phone, type, total_spent, visit_count, last_purchase, created_at, updated_at`

// Create inserta un cliente.
func (r *ClientRepo) Create(c *entity.Client) error {
	query := `
		INSERT INTO clients
			(id, club_id, name, email, phone, type, total_spent, visit_count, last_purchase, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.ClubID, c.Name, c.Email, c.Phone, c.Type,
		c.TotalSpent, c.VisitCount, c.LastPurchase, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente del club. Devuelve nil si no existe.
func (r *ClientRepo) GetByID(id, clubID string) (*entity.Client, error) {
	query := `SELECT` + clientColumns + ` FROM clients WHERE id = $1 AND club_id = $2`
	var c entity.Client
	err := r.q.QueryRow(context.Background(), query, id, clubID).Scan(
		&c.ID, &c.ClubID, &c.Name, &c.Email, &c.Phone, &c.Type,
		&c.TotalSpent, &c.VisitCount, &c.LastPurchase, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// ListByClub clientes de un club, ordenados por nombre.
func (r *ClientRepo) ListByClub(clubID string) ([]*entity.Client, error) {
	query := `SELECT` + clientColumns + ` FROM clients WHERE club_id = $1 ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query, clubID)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.ClubID, &c.Name, &c.Email, &c.Phone, &c.Type,
			&c.TotalSpent, &c.VisitCount, &c.LastPurchase, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza los datos editables del cliente.
func (r *ClientRepo) Update(c *entity.Client) error {
	query := `
		UPDATE clients SET name = $3, email = $4, phone = $5, type = $6, updated_at = $7
		WHERE id = $1 AND club_id = $2`
	tag, err := r.q.Exec(context.Background(), query,
		c.ID, c.ClubID, c.Name, c.Email, c.Phone, c.Type, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente del club.
func (r *ClientRepo) Delete(id, clubID string) error {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM clients WHERE id = $1 AND club_id = $2`, id, clubID)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// RegisterPurchase acumula una compra del cliente en una sola escritura.
func (r *ClientRepo) RegisterPurchase(id, clubID string, amount decimal.Decimal, at time.Time) error {
	query := `
		UPDATE clients SET
			total_spent = total_spent + $3,
			visit_count = visit_count + 1,
			last_purchase = $4,
			updated_at = $4
		WHERE id = $1 AND club_id = $2`
	tag, err := r.q.Exec(context.Background(), query, id, clubID, amount, at)
	if err != nil {
		return fmt.Errorf("register purchase: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
