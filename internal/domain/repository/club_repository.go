package repository

import "github.com/Gloweldev/ArximiaBackend/internal/domain/entity"

// ClubRepository define el puerto de persistencia de clubs (tenants).
type ClubRepository interface {
	Create(c *entity.Club) error
	GetByID(id string) (*entity.Club, error)
	ListByOwner(ownerID string) ([]*entity.Club, error)
	CountByOwner(ownerID string) (int, error)
	Update(c *entity.Club) error
}
