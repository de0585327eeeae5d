package repository

import (
	"time"

	"github.com/Gloweldev/ArximiaBackend/internal/domain/entity"
)

// ExpenseRepository define el puerto de persistencia de gastos.
type ExpenseRepository interface {
	Create(e *entity.Expense) error
	ListByClub(clubID string, from, to *time.Time) ([]*entity.Expense, error)
}
