package repository

import (
	"context"

	"github.com/jhoicas/Portafolio-api/internal/domain/entity"
)

// SessionRepository guarda las instantáneas de sesión.
type SessionRepository interface {
	Save(ctx context.Context, session entity.Session) error
	// Get devuelve (nil, nil) si la sesión no existe o fue cerrada.
	Get(ctx context.Context, id string) (*entity.Session, error)
	Delete(ctx context.Context, id string) error
	// ListByUser sesiones abiertas del usuario, en orden de apertura.
	ListByUser(ctx context.Context, userID string) ([]entity.Session, error)
}
