package repository

import "github.com/Gloweldev/ArximiaBackend/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia de empleados.
type EmployeeRepository interface {
	Create(e *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	ListByOwner(ownerID string) ([]*entity.Employee, error)
	CountByOwner(ownerID string) (int, error)
	Update(e *entity.Employee) error
	Delete(id string) error
}
