// Package backend abre el almacenamiento clave-valor elegido con STORAGE_DRIVER.
package backend

import (
	"context"
	"fmt"

	"github.com/spf13/afero"

	"github.com/jhoicas/Portafolio-api/internal/infrastructure/kv"
	"github.com/jhoicas/Portafolio-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Portafolio-api/internal/infrastructure/rediskv"
	"github.com/jhoicas/Portafolio-api/pkg/config"
)

// Open construye el kv.Store. El llamador debe cerrarlo.
func Open(ctx context.Context, cfg *config.Config) (kv.Store, error) {
	switch cfg.Storage.Driver {
	case "memory", "":
		return kv.NewMemoryStore(), nil
	case "file":
		s, err := kv.NewFileStore(afero.NewOsFs(), cfg.Storage.DataDir)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "redis":
		s, err := rediskv.New(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		s, err := postgres.NewKVStore(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("backend: driver desconocido %q", cfg.Storage.Driver)
	}
}
