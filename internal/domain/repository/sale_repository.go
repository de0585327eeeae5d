package repository

import (
	"time"

	"github.com/Gloweldev/ArximiaBackend/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia de ventas.
type SaleRepository interface {
	Create(s *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	ListByClub(clubID string, from, to *time.Time, limit, offset int) ([]*entity.Sale, error)
}
