package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Portafolio-api/internal/domain/entity"
)

// PortfolioReport datos ya resueltos para renderizar el portafolio de un docente.
type PortfolioReport struct {
	Teacher       entity.User
	Activities    []entity.Activity
	PracticeCount int
	SeminarCount  int
	TotalUploads  int
	PracticeShare decimal.Decimal
	GeneratedAt   time.Time
}

// PortfolioPDFGenerator genera la representación en PDF del portafolio.
type PortfolioPDFGenerator interface {
	GeneratePortfolioPDF(ctx context.Context, report PortfolioReport) ([]byte, error)
}
