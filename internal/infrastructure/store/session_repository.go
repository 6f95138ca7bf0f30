package store

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/jhoicas/Portafolio-api/internal/domain/entity"
	"github.com/jhoicas/Portafolio-api/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo guarda cada sesión bajo <prefix>session:<id> y un índice de ids
// por usuario bajo <prefix>user_sessions:<userID>.
type SessionRepo struct {
	s *Store
}

// NewSessionRepository construye el repositorio de sesiones.
func NewSessionRepository(s *Store) *SessionRepo {
	return &SessionRepo{s: s}
}

func (r *SessionRepo) Save(ctx context.Context, session entity.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("codificar sesión: %w", err)
	}
	if err := r.s.kv.Set(ctx, r.s.key(sessionKey+session.ID), raw); err != nil {
		return fmt.Errorf("guardar sesión: %w", err)
	}
	return mutate(ctx, r.s, userSessions+session.User.ID, func(ids []string) ([]string, error) {
		if slices.Contains(ids, session.ID) {
			return ids, nil
		}
		return append(ids, session.ID), nil
	})
}

func (r *SessionRepo) Get(ctx context.Context, id string) (*entity.Session, error) {
	raw, err := r.s.kv.Get(ctx, r.s.key(sessionKey+id))
	if err != nil {
		return nil, fmt.Errorf("leer sesión: %w", err)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	var session entity.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("decodificar sesión: %w", err)
	}
	return &session, nil
}

func (r *SessionRepo) Delete(ctx context.Context, id string) error {
	session, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := r.s.kv.Delete(ctx, r.s.key(sessionKey+id)); err != nil {
		return fmt.Errorf("borrar sesión: %w", err)
	}
	if session == nil {
		return nil
	}
	return mutate(ctx, r.s, userSessions+session.User.ID, func(ids []string) ([]string, error) {
		return slices.DeleteFunc(ids, func(s string) bool { return s == id }), nil
	})
}

// ListByUser omite los ids del índice cuya sesión ya no existe.
func (r *SessionRepo) ListByUser(ctx context.Context, userID string) ([]entity.Session, error) {
	ids, err := loadCollection[string](ctx, r.s, userSessions+userID)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Session, 0, len(ids))
	for _, id := range ids {
		session, err := r.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if session != nil {
			out = append(out, *session)
		}
	}
	return out, nil
}
