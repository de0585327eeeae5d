package repository

import (
	"time"

	"github.com/Gloweldev/ArximiaBackend/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ClientRepository define el puerto de persistencia de clientes (por club).
type ClientRepository interface {
	Create(c *entity.Client) error
	GetByID(id, clubID string) (*entity.Client, error)
	ListByClub(clubID string) ([]*entity.Client, error)
	Update(c *entity.Client) error
	Delete(id, clubID string) error
	// RegisterPurchase incrementa TotalSpent y VisitCount y actualiza
	// LastPurchase en una sola escritura.
	RegisterPurchase(id, clubID string, amount decimal.Decimal, at time.Time) error
}
