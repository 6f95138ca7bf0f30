// seed crea la cuenta de administrador en el almacenamiento configurado
// (STORAGE_DRIVER). El registro público solo crea docentes por defecto.
//
// Uso: go run ./cmd/seed <email> <password> [nombre]
// Si el email ya existe no hace nada.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jhoicas/Portafolio-api/internal/application/auth"
	"github.com/jhoicas/Portafolio-api/internal/application/dto"
	"github.com/jhoicas/Portafolio-api/internal/application/session"
	"github.com/jhoicas/Portafolio-api/internal/domain"
	"github.com/jhoicas/Portafolio-api/internal/domain/entity"
	"github.com/jhoicas/Portafolio-api/internal/infrastructure/backend"
	"github.com/jhoicas/Portafolio-api/internal/infrastructure/store"
	"github.com/jhoicas/Portafolio-api/pkg/config"
	"github.com/jhoicas/Portafolio-api/pkg/logger"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "uso: seed <email> <password> [nombre]")
		os.Exit(2)
	}
	email, password, name := os.Args[1], os.Args[2], "Administrador"
	if len(os.Args) > 3 {
		name = os.Args[3]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	kvStore, err := backend.Open(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir almacenamiento: %v\n", err)
		os.Exit(1)
	}
	defer kvStore.Close()

	st := store.New(kvStore, cfg.Storage.KeyPrefix)
	// El secreto solo se usa para firmar el token de la sesión inicial, que se descarta.
	jwtCfg := auth.JWTConfig{Secret: cfg.JWT.Secret, ExpMinutes: 1, Issuer: cfg.JWT.Issuer}
	if jwtCfg.Secret == "" {
		jwtCfg.Secret = "seed"
	}
	sessions := session.NewManager(store.NewSessionRepository(st))
	uc := auth.NewAuthUseCase(store.NewUserRepository(st), sessions, jwtCfg, cfg.Auth.PasswordMode, log)

	out, err := uc.Register(ctx, dto.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     string(entity.RoleAdmin),
	})
	if errors.Is(err, domain.ErrEmailAlreadyExists) {
		fmt.Printf("%s ya existe, sin cambios\n", email)
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear administrador: %v\n", err)
		os.Exit(1)
	}

	// La sesión abierta por Register no se usa.
	id, err := uc.Resolve(ctx, out.Token)
	if err == nil {
		_ = uc.Logout(ctx, id)
	}
	fmt.Printf("Administrador creado: %s (%s)\n", out.User.Email, out.User.ID)
}
