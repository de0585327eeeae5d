package repository

import "github.com/Gloweldev/ArximiaBackend/internal/domain/entity"

// UserRepository define el puerto de persistencia de usuarios (dueños de
// cuenta). IdealStock vive aquí: es configuración a nivel de cuenta.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	Update(u *entity.User) error
}
