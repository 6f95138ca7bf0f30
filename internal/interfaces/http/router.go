package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Portafolio-api/internal/application/activity"
	"github.com/jhoicas/Portafolio-api/internal/application/auth"
	"github.com/jhoicas/Portafolio-api/internal/application/usecase"
	"github.com/jhoicas/Portafolio-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	Activities  *activity.Service
	DashboardUC *usecase.DashboardUseCase
	PortfolioUC *usecase.PortfolioUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token de una sesión abierta)
	protected := api.Group("/", AuthMiddleware(deps.AuthUC))
	protected.Post("/auth/logout", authHandler.Logout)

	// Perfil
	userHandler := NewUserHandler(deps.UserUC)
	protected.Get("/me", userHandler.Me)
	protected.Put("/me/profile", userHandler.UpdateProfile)
	protected.Get("/teachers", RequireRole(entity.RoleAdmin), userHandler.ListTeachers)

	// Actividades
	activityHandler := NewActivityHandler(deps.Activities)
	activities := protected.Group("/activities")
	activities.Get("/", activityHandler.List)
	activities.Post("/", RequireRole(entity.RoleTeacher), activityHandler.Create)
	activities.Get("/:id", activityHandler.GetByID)
	activities.Put("/:id", RequireRole(entity.RoleTeacher), activityHandler.Update)
	activities.Delete("/:id", RequireRole(entity.RoleTeacher), activityHandler.Delete)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.GetSummary)

	// Portafolio PDF
	portfolioHandler := NewPortfolioHandler(deps.PortfolioUC)
	protected.Get("/portfolio/:teacherId/pdf", portfolioHandler.DownloadPDF)
}
