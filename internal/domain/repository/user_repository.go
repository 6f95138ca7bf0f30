package repository

import (
	"context"

	"github.com/jhoicas/Portafolio-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// List devuelve la colección completa en orden de inserción.
	List(ctx context.Context) ([]entity.User, error)
	// Add falla con domain.ErrEmailAlreadyExists si el email ya existe.
	Add(ctx context.Context, user entity.User) error
	// Update reemplaza el registro con el mismo ID; domain.ErrNotFound si no existe.
	Update(ctx context.Context, user entity.User) error
	// GetByID y GetByEmail devuelven (nil, nil) si no hay coincidencia.
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
