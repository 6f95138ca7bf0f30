package store

import (
	"context"

	"github.com/jhoicas/Portafolio-api/internal/domain"
	"github.com/jhoicas/Portafolio-api/internal/domain/entity"
	"github.com/jhoicas/Portafolio-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación de UserRepository sobre la colección "users".
type UserRepo struct {
	s *Store
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(s *Store) *UserRepo {
	return &UserRepo{s: s}
}

// List devuelve todos los usuarios en orden de inserción.
func (r *UserRepo) List(ctx context.Context) ([]entity.User, error) {
	return loadCollection[entity.User](ctx, r.s, usersKey)
}

// Add agrega el usuario. El email es único dentro de la colección.
func (r *UserRepo) Add(ctx context.Context, user entity.User) error {
	return mutate(ctx, r.s, usersKey, func(users []entity.User) ([]entity.User, error) {
		for _, u := range users {
			if u.Email == user.Email {
				return nil, domain.ErrEmailAlreadyExists
			}
		}
		return append(users, user), nil
	})
}

// Update reemplaza el usuario con el mismo ID.
func (r *UserRepo) Update(ctx context.Context, user entity.User) error {
	return mutate(ctx, r.s, usersKey, func(users []entity.User) ([]entity.User, error) {
		idx := -1
		for i, u := range users {
			switch {
			case u.ID == user.ID:
				idx = i
			case u.Email == user.Email:
				return nil, domain.ErrEmailAlreadyExists
			}
		}
		if idx < 0 {
			return nil, domain.ErrNotFound
		}
		users[idx] = user
		return users, nil
	})
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

// GetByEmail obtiene un usuario por email (coincidencia exacta).
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, nil
}
