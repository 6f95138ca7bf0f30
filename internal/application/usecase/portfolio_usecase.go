package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jhoicas/Portafolio-api/internal/application/ports"
	"github.com/jhoicas/Portafolio-api/internal/application/query"
	"github.com/jhoicas/Portafolio-api/internal/application/session"
	"github.com/jhoicas/Portafolio-api/internal/domain"
	"github.com/jhoicas/Portafolio-api/internal/domain/repository"
)

var unsafeFileChars = regexp.MustCompile(`[^a-z0-9]+`)

// PortfolioUseCase exporta el portafolio de un docente a PDF.
type PortfolioUseCase struct {
	users      repository.UserRepository
	activities repository.ActivityRepository
	generator  ports.PortfolioPDFGenerator
	now        func() time.Time
}

// NewPortfolioUseCase construye el caso de uso inyectando el generador de PDF.
func NewPortfolioUseCase(users repository.UserRepository, activities repository.ActivityRepository, generator ports.PortfolioPDFGenerator) *PortfolioUseCase {
	return &PortfolioUseCase{users: users, activities: activities, generator: generator, now: time.Now}
}

// ExportPortfolio genera el PDF del portafolio.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrForbidden        si un docente pide el portafolio de otro.
//   - domain.ErrNotFound         si teacherID no es un docente registrado.
func (uc *PortfolioUseCase) ExportPortfolio(ctx context.Context, identity session.Identity, teacherID string) (pdfBytes []byte, filename string, err error) {
	if !identity.IsAdmin() && identity.UserID != teacherID {
		return nil, "", domain.ErrForbidden
	}

	teacher, err := uc.users.GetByID(ctx, teacherID)
	if err != nil {
		return nil, "", fmt.Errorf("portafolio: obtener docente: %w", err)
	}
	if !teacher.IsTeacher() {
		return nil, "", domain.ErrNotFound
	}

	all, err := uc.activities.List(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("portafolio: listar actividades: %w", err)
	}
	mine := query.ActivitiesForTeacher(all, teacherID)
	stats := query.ComputeStats(mine)

	report := ports.PortfolioReport{
		Teacher:       teacher.Public(),
		Activities:    mine,
		PracticeCount: stats.PracticeCount,
		SeminarCount:  stats.SeminarCount,
		TotalUploads:  stats.TotalUploads,
		PracticeShare: stats.PracticeShare,
		GeneratedAt:   uc.now(),
	}
	pdfBytes, err = uc.generator.GeneratePortfolioPDF(ctx, report)
	if err != nil {
		return nil, "", err
	}
	return pdfBytes, portfolioFileName(teacher.Name), nil
}

// portfolioFileName "Ana Perez" -> "portafolio-ana-perez.pdf"; solo ASCII minúsculas y guiones.
func portfolioFileName(name string) string {
	slug := strings.Trim(unsafeFileChars.ReplaceAllString(strings.ToLower(name), "-"), "-")
	if slug == "" {
		slug = "docente"
	}
	return "portafolio-" + slug + ".pdf"
}
