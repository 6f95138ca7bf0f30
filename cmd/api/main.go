package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/Portafolio-api/docs"
	"github.com/jhoicas/Portafolio-api/internal/application/activity"
	"github.com/jhoicas/Portafolio-api/internal/application/auth"
	"github.com/jhoicas/Portafolio-api/internal/application/session"
	"github.com/jhoicas/Portafolio-api/internal/application/usecase"
	infraai "github.com/jhoicas/Portafolio-api/internal/infrastructure/ai"
	"github.com/jhoicas/Portafolio-api/internal/infrastructure/backend"
	infrapdf "github.com/jhoicas/Portafolio-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Portafolio-api/internal/infrastructure/store"
	httpRouter "github.com/jhoicas/Portafolio-api/internal/interfaces/http"
	"github.com/jhoicas/Portafolio-api/pkg/config"
	"github.com/jhoicas/Portafolio-api/pkg/logger"
	"github.com/jhoicas/Portafolio-api/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Str("ai", cfg.AI.Provider).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}
	if cfg.Auth.PasswordMode == auth.PasswordPlain {
		log.Warn().Msg("AUTH_PASSWORD_MODE=plain: las contraseñas se guardan en texto plano")
	}

	ctx := context.Background()
	kvStore, err := backend.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer kvStore.Close()

	st := store.New(kvStore, cfg.Storage.KeyPrefix)
	userRepo := store.NewUserRepository(st)
	activityRepo := store.NewActivityRepository(st)
	sessions := session.NewManager(store.NewSessionRepository(st))

	llm, err := infraai.NewFromConfig(cfg.AI)
	if err != nil {
		log.Fatal().Err(err).Msg("proveedor de IA")
	}

	authUC := auth.NewAuthUseCase(userRepo, sessions, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.Auth.PasswordMode, log)
	userUC := usecase.NewUserUseCase(userRepo, sessions)
	activitySvc := activity.NewService(activityRepo, userRepo, llm, cfg.AI.Timeout(), log)
	dashboardUC := usecase.NewDashboardUseCase(userRepo, activityRepo, llm, cfg.AI.Timeout(), log)

	// PDF: portafolio del docente
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	portfolioUC := usecase.NewPortfolioUseCase(userRepo, activityRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.AI.Timeout() + 10*time.Second, // la extracción corre dentro de la petición
		IdleTimeout:  time.Second * 60,
		BodyLimit:    20 * 1024 * 1024, // PDFs en base64
	})
	app.Use(recover.New())
	app.Use(log.FiberMiddleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Portafolio Docente API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", metrics.Handler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		Activities:  activitySvc,
		DashboardUC: dashboardUC,
		PortfolioUC: portfolioUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
