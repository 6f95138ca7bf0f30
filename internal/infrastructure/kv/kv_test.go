package kv_test

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Portafolio-api/internal/infrastructure/kv"
	"github.com/jhoicas/Portafolio-api/internal/infrastructure/kv/kvtest"
)

func TestMemoryStore_Contrato(t *testing.T) {
	kvtest.RunContract(t, kv.NewMemoryStore())
}

func TestFileStore_Contrato(t *testing.T) {
	s, err := kv.NewFileStore(afero.NewMemMapFs(), "/data")
	require.NoError(t, err)
	kvtest.RunContract(t, s)
}

func TestFileStore_ClavesConSeparadores(t *testing.T) {
	fs := afero.NewMemMapFs()
	s, err := kv.NewFileStore(fs, "/data")
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "tps_session:abc/def", []byte(`{"id":"abc"}`)))

	got, err := s.Get(ctx, "tps_session:abc/def")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"abc"}`, string(got))

	// Una clave con "/" no debe crear subdirectorios.
	entries, err := afero.ReadDir(fs, "/data")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.False(t, entries[0].IsDir())
}

func TestMemoryStore_DevuelveCopias(t *testing.T) {
	s := kv.NewMemoryStore()
	ctx := context.Background()
	v := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", v))
	v[0] = 'z'

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}
