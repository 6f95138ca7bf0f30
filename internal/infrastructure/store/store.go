// Package store implementa los repositorios del portafolio sobre un kv.Store.
//
// Cada colección vive bajo una sola clave como arreglo JSON en orden de
// inserción (<prefix>users, <prefix>activities). Toda mutación vuelve a escribir
// la colección completa: O(n) por escritura, aceptable a la escala de un
// portafolio docente. Una clave ausente o vacía es una colección vacía.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jhoicas/Portafolio-api/internal/infrastructure/kv"
)

const (
	usersKey      = "users"
	activitiesKey = "activities"
	sessionKey    = "session:"
	userSessions  = "user_sessions:"
)

// Store comparte el backend y el mutex de escritura entre los repositorios.
// El mutex solo protege el read-modify-write dentro de este proceso; varios
// procesos sobre el mismo backend quedan en last-write-wins.
type Store struct {
	kv     kv.Store
	prefix string
	mu     sync.Mutex
}

// New construye el store. prefix se antepone a todas las claves.
func New(backend kv.Store, prefix string) *Store {
	return &Store{kv: backend, prefix: prefix}
}

func (s *Store) key(name string) string { return s.prefix + name }

func loadCollection[T any](ctx context.Context, s *Store, name string) ([]T, error) {
	raw, err := s.kv.Get(ctx, s.key(name))
	if err != nil {
		return nil, fmt.Errorf("leer colección %s: %w", name, err)
	}
	items := []T{}
	if len(raw) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decodificar colección %s: %w", name, err)
	}
	if items == nil { // "null"
		items = []T{}
	}
	return items, nil
}

func saveCollection[T any](ctx context.Context, s *Store, name string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("codificar colección %s: %w", name, err)
	}
	if err := s.kv.Set(ctx, s.key(name), raw); err != nil {
		return fmt.Errorf("guardar colección %s: %w", name, err)
	}
	return nil
}

// mutate ejecuta fn sobre la colección cargada y guarda el resultado.
// Si fn devuelve error no se escribe nada.
func mutate[T any](ctx context.Context, s *Store, name string, fn func([]T) ([]T, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := loadCollection[T](ctx, s, name)
	if err != nil {
		return err
	}
	next, err := fn(items)
	if err != nil {
		return err
	}
	return saveCollection(ctx, s, name, next)
}
