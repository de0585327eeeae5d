package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Gloweldev/ArximiaBackend/internal/domain/entity"
	"github.com/Gloweldev/ArximiaBackend/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de ventas sobre PostgreSQL (usable con pool o tx).
// Los grupos de ítems se guardan como JSONB: se leen siempre completos y
// nunca se consultan por línea.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una venta con sus grupos de ítems.
func (r *SaleRepo) Create(s *entity.Sale) error {
	groups, err := json.Marshal(s.ItemGroups)
	if err != nil {
		return fmt.Errorf("marshal item groups: %w", err)
	}
	query := `
		INSERT INTO sales (id, club_id, employee_id, client_id, item_groups, total, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.q.Exec(context.Background(), query,
		s.ID, s.ClubID, s.EmployeeID, nullIfEmpty(s.ClientID), groups, s.Total, s.Status, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta. Devuelve nil si no existe.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT id, club_id, employee_id, client_id, item_groups, total, status, created_at
		FROM sales WHERE id = $1`
	s, err := scanSaleRow(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

// ListByClub ventas de un club, descendente por fecha, con rango opcional.
func (r *SaleRepo) ListByClub(clubID string, from, to *time.Time, limit, offset int) ([]*entity.Sale, error) {
	query := `
		SELECT id, club_id, employee_id, client_id, item_groups, total, status, created_at
		FROM sales WHERE club_id = $1`
	args := []any{clubID}
	pos := 2
	if from != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		s, err := scanSaleRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func scanSaleRow(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	var clientID *string
	var groups []byte
	err := row.Scan(&s.ID, &s.ClubID, &s.EmployeeID, &clientID, &groups, &s.Total, &s.Status, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if clientID != nil {
		s.ClientID = *clientID
	}
	if len(groups) > 0 {
		if err := json.Unmarshal(groups, &s.ItemGroups); err != nil {
			return nil, fmt.Errorf("unmarshal item groups: %w", err)
		}
	}
	return &s, nil
}
