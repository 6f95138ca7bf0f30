// Package session materializa y resuelve la sesión del usuario autenticado.
// La identidad se pasa explícitamente a cada caso de uso; no hay estado global.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Portafolio-api/internal/domain"
	"github.com/jhoicas/Portafolio-api/internal/domain/entity"
	"github.com/jhoicas/Portafolio-api/internal/domain/repository"
)

// Identity usuario de la sesión en curso.
type Identity struct {
	SessionID string
	UserID    string
	Name      string
	Email     string
	Role      entity.Role
}

func (i Identity) IsAdmin() bool   { return i.Role == entity.RoleAdmin }
func (i Identity) IsTeacher() bool { return i.Role == entity.RoleTeacher }

// Manager abre, resuelve y cierra sesiones persistidas.
type Manager struct {
	repo repository.SessionRepository
	now  func() time.Time
}

// NewManager construye el gestor de sesiones.
func NewManager(repo repository.SessionRepository) *Manager {
	return &Manager{repo: repo, now: time.Now}
}

// Open guarda una instantánea del usuario (sin contraseña) y devuelve su identidad.
func (m *Manager) Open(ctx context.Context, user entity.User) (Identity, error) {
	s := entity.Session{
		ID:        uuid.New().String(),
		User:      user.Public(),
		CreatedAt: m.now().UTC(),
	}
	if err := m.repo.Save(ctx, s); err != nil {
		return Identity{}, fmt.Errorf("abrir sesión: %w", err)
	}
	return identityOf(s), nil
}

// Resolve reconstruye la identidad. ErrUnauthorized si la sesión no existe.
func (m *Manager) Resolve(ctx context.Context, sessionID string) (Identity, error) {
	if sessionID == "" {
		return Identity{}, domain.ErrUnauthorized
	}
	s, err := m.repo.Get(ctx, sessionID)
	if err != nil {
		return Identity{}, err
	}
	if s == nil {
		return Identity{}, domain.ErrUnauthorized
	}
	return identityOf(*s), nil
}

// Refresh reemplaza la instantánea de todas las sesiones abiertas del usuario
// tras editarlo (nombre, perfil).
func (m *Manager) Refresh(ctx context.Context, user entity.User) error {
	sessions, err := m.repo.ListByUser(ctx, user.ID)
	if err != nil {
		return err
	}
	for _, s := range sessions {
		s.User = user.Public()
		if err := m.repo.Save(ctx, s); err != nil {
			return fmt.Errorf("refrescar sesión: %w", err)
		}
	}
	return nil
}

// Close elimina la sesión. Cerrar una sesión inexistente no es error.
func (m *Manager) Close(ctx context.Context, sessionID string) error {
	return m.repo.Delete(ctx, sessionID)
}

func identityOf(s entity.Session) Identity {
	return Identity{
		SessionID: s.ID,
		UserID:    s.User.ID,
		Name:      s.User.Name,
		Email:     s.User.Email,
		Role:      s.User.Role,
	}
}
