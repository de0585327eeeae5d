package repository

import "github.com/Gloweldev/ArximiaBackend/internal/domain/entity"

// ProductRepository define el puerto de persistencia del catálogo.
type ProductRepository interface {
	Create(p *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	ListByClub(clubID string, includeArchived bool) ([]*entity.Product, error)
	// SearchByName busca por prefijo de nombre normalizado (sin acentos,
	// case-insensitive), excluyendo archivados.
	SearchByName(clubID, normalizedPrefix string, limit int) ([]*entity.Product, error)
	Update(p *entity.Product) error
	SetArchived(id string, archived bool) error
}
