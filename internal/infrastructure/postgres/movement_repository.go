package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Gloweldev/ArximiaBackend/internal/domain/entity"
	"github.com/Gloweldev/ArximiaBackend/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del log de movimientos sobre PostgreSQL
// (usable con pool o tx). Solo inserta y lee: el log es append-only.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento.
func (r *MovementRepo) Create(m *entity.Movement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (id, product_id, club_id, type, unit, quantity, description, user_id, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ProductID, m.ClubID, m.Type, m.Unit, m.Quantity, m.Description, nullIfEmpty(m.UserID), m.Date,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// ListByProduct historial de un producto, descendente por fecha, con rango opcional.
func (r *MovementRepo) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT id, product_id, club_id, type, unit, quantity, description, user_id, date
		FROM movements WHERE product_id = $1`
	args := []any{productID}
	pos := 2
	if from != nil {
		query += fmt.Sprintf(" AND date >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND date <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY date DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	return r.queryMovements(query, args...)
}

// ListForReplay todos los movimientos del par (producto, club), ascendente
// por fecha, sin límite. Solo para reconstrucción de saldos.
func (r *MovementRepo) ListForReplay(productID, clubID string) ([]*entity.Movement, error) {
	query := `
		SELECT id, product_id, club_id, type, unit, quantity, description, user_id, date
		FROM movements WHERE product_id = $1 AND club_id = $2
		ORDER BY date ASC, id ASC`
	return r.queryMovements(query, productID, clubID)
}

func (r *MovementRepo) queryMovements(query string, args ...any) ([]*entity.Movement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		var userID *string
		if err := rows.Scan(&m.ID, &m.ProductID, &m.ClubID, &m.Type, &m.Unit,
			&m.Quantity, &m.Description, &userID, &m.Date); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if userID != nil {
			m.UserID = *userID
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
