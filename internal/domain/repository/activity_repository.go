package repository

import (
	"context"

	"github.com/jhoicas/Portafolio-api/internal/domain/entity"
)

// ActivityRepository define el puerto de persistencia para Activity.
type ActivityRepository interface {
	// List devuelve la colección completa en orden de inserción.
	List(ctx context.Context) ([]entity.Activity, error)
	Add(ctx context.Context, activity entity.Activity) error
	// Update reemplaza el registro con el mismo ID; domain.ErrNotFound si no existe.
	Update(ctx context.Context, activity entity.Activity) error
	// Delete elimina por ID; no hace nada si no existe.
	Delete(ctx context.Context, id string) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.Activity, error)
}
