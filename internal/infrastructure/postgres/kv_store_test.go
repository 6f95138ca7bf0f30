package postgres_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Portafolio-api/internal/infrastructure/kv/kvtest"
	"github.com/jhoicas/Portafolio-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Portafolio-api/pkg/config"
)

// Requiere una base real: TEST_DATABASE_URL=postgres://... go test ./...
func TestKVStore_Contrato(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()

	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)

	s, err := postgres.NewKVStore(ctx, pool)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	kvtest.RunContract(t, s)
}
