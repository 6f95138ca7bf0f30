package ai

import (
	"context"
	"errors"

	"github.com/jhoicas/Portafolio-api/internal/application/ports"
	"github.com/jhoicas/Portafolio-api/internal/domain/entity"
)

var _ ports.LLMService = DisabledService{}

// ErrDisabled la IA está desactivada (AI_PROVIDER=none).
var ErrDisabled = errors.New("proveedor de IA desactivado")

// DisabledService falla siempre: la extracción queda con el texto de reemplazo y
// los consejos con el mensaje de no disponible, igual que ante una caída del proveedor.
type DisabledService struct{}

func (DisabledService) ExtractDocument(context.Context, string, string) (string, error) {
	return "", &ports.ExtractionError{Provider: "none", Operation: opExtract, Err: ErrDisabled}
}

func (DisabledService) PortfolioAdvice(context.Context, []entity.Activity) (string, error) {
	return "", &ports.ExtractionError{Provider: "none", Operation: opAdvice, Err: ErrDisabled}
}
