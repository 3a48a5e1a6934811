package repository

import (
	"github.com/tu-usuario/agency-pro/internal/domain/authz"
	"github.com/tu-usuario/agency-pro/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id entity.ID) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	// ListScoped lista usuarios visibles según el alcance calculado por la política.
	ListScoped(scope authz.Scope) ([]*entity.User, error)
	Delete(id entity.ID) error
}
