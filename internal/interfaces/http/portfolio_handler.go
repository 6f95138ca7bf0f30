package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Portafolio-api/internal/application/usecase"
)

// PortfolioHandler descarga del portafolio en PDF.
type PortfolioHandler struct {
	uc *usecase.PortfolioUseCase
}

// NewPortfolioHandler construye el handler.
func NewPortfolioHandler(uc *usecase.PortfolioUseCase) *PortfolioHandler {
	return &PortfolioHandler{uc: uc}
}

// DownloadPDF godoc
// @Summary      Portafolio en PDF
// @Description  El docente descarga el suyo; un ADMIN el de cualquier docente.
// @Tags         portfolio
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        teacherId  path  string  true  "id del docente"
// @Success      200
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/portfolio/{teacherId}/pdf [get]
func (h *PortfolioHandler) DownloadPDF(c *fiber.Ctx) error {
	identity, ok := GetIdentity(c)
	if !ok {
		return unauthorized(c)
	}
	pdfBytes, filename, err := h.uc.ExportPortfolio(c.Context(), identity, c.Params("teacherId"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdfBytes)
}
