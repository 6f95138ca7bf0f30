package store

import (
	"context"

	"github.com/jhoicas/Portafolio-api/internal/domain"
	"github.com/jhoicas/Portafolio-api/internal/domain/entity"
	"github.com/jhoicas/Portafolio-api/internal/domain/repository"
)

var _ repository.ActivityRepository = (*ActivityRepo)(nil)

// ActivityRepo implementación de ActivityRepository sobre la colección "activities".
type ActivityRepo struct {
	s *Store
}

// NewActivityRepository construye el adaptador de persistencia para actividades.
func NewActivityRepository(s *Store) *ActivityRepo {
	return &ActivityRepo{s: s}
}

// List devuelve todas las actividades en orden de inserción.
func (r *ActivityRepo) List(ctx context.Context) ([]entity.Activity, error) {
	return loadCollection[entity.Activity](ctx, r.s, activitiesKey)
}

// Add agrega la actividad al final de la colección.
func (r *ActivityRepo) Add(ctx context.Context, activity entity.Activity) error {
	return mutate(ctx, r.s, activitiesKey, func(items []entity.Activity) ([]entity.Activity, error) {
		for _, a := range items {
			if a.ID == activity.ID {
				return nil, domain.ErrConflict
			}
		}
		return append(items, activity), nil
	})
}

// Update reemplaza la actividad con el mismo ID conservando su posición.
func (r *ActivityRepo) Update(ctx context.Context, activity entity.Activity) error {
	return mutate(ctx, r.s, activitiesKey, func(items []entity.Activity) ([]entity.Activity, error) {
		for i := range items {
			if items[i].ID == activity.ID {
				items[i] = activity
				return items, nil
			}
		}
		return nil, domain.ErrNotFound
	})
}

// Delete elimina la actividad; si no existe no hace nada.
func (r *ActivityRepo) Delete(ctx context.Context, id string) error {
	return mutate(ctx, r.s, activitiesKey, func(items []entity.Activity) ([]entity.Activity, error) {
		out := items[:0]
		for _, a := range items {
			if a.ID != id {
				out = append(out, a)
			}
		}
		return out, nil
	})
}

// GetByID obtiene una actividad por ID.
func (r *ActivityRepo) GetByID(ctx context.Context, id string) (*entity.Activity, error) {
	items, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, nil
}
