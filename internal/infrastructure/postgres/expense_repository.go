package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Gloweldev/ArximiaBackend/internal/domain/entity"
	"github.com/Gloweldev/ArximiaBackend/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implementación de gastos sobre PostgreSQL (usable con pool o tx).
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador de gastos. Pasar pool o tx (Querier).
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

// Create persiste un gasto.
func (r *ExpenseRepo) Create(e *entity.Expense) error {
	productID := (*string)(nil)
	if e.ProductID != "" {
		productID = &e.ProductID
	}
	query := `
		INSERT INTO expenses (id, club_id, product_id, category, amount, description, user_id, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.ClubID, productID, e.Category, e.Amount, e.Description, e.UserID, e.Date,
	)
	if err != nil {
		return fmt.Errorf("create expense: %w", err)
	}
	return nil
}

// ListByClub gastos de un club, descendente por fecha, con rango opcional.
func (r *ExpenseRepo) ListByClub(clubID string, from, to *time.Time) ([]*entity.Expense, error) {
	query := `
		SELECT id, club_id, product_id, category, amount, description, user_id, date
		FROM expenses WHERE club_id = $1`
	args := []any{clubID}
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
	query += " ORDER BY date DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Expense
	for rows.Next() {
		var e entity.Expense
		var productID *string
		if err := rows.Scan(&e.ID, &e.ClubID, &productID, &e.Category,
			&e.Amount, &e.Description, &e.UserID, &e.Date); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		if productID != nil {
			e.ProductID = *productID
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
