package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Portafolio-api/internal/application/usecase"
)

// DashboardHandler maneja el tablero principal.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Tablero según rol
// @Description  TEACHER: actividades propias, indicadores y consejos de IA.
// @Description  ADMIN: docentes y actividades (filtradas por teacher_id) con indicadores.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        teacher_id  query  string  false  "docente seleccionado (ADMIN)"
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	identity, ok := GetIdentity(c)
	if !ok {
		return unauthorized(c)
	}
	summary, err := h.uc.Summary(c.Context(), identity, c.Query("teacher_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
