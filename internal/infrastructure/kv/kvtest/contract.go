// Package kvtest contiene las pruebas de contrato compartidas por todos los backends kv.
package kvtest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Portafolio-api/internal/infrastructure/kv"
)

// RunContract verifica la semántica común de kv.Store sobre s.
func RunContract(t *testing.T, s kv.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("clave inexistente devuelve nil", func(t *testing.T) {
		got, err := s.Get(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("set y get", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "users", []byte(`[{"id":"1"}]`)))
		got, err := s.Get(ctx, "users")
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":"1"}]`, string(got))
	})

	t.Run("set sobrescribe", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "users", []byte(`[]`)))
		got, err := s.Get(ctx, "users")
		require.NoError(t, err)
		assert.JSONEq(t, `[]`, string(got))
	})

	t.Run("delete y delete repetido", func(t *testing.T) {
		require.NoError(t, s.Delete(ctx, "users"))
		require.NoError(t, s.Delete(ctx, "users"))
		got, err := s.Get(ctx, "users")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
