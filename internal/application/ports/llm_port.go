package ports

import (
	"context"
	"fmt"

	"github.com/jhoicas/Portafolio-api/internal/domain/entity"
)

// DocumentExtractor convierte un PDF (base64 puro, sin prefijo data:) en un resumen
// de texto para el portafolio.
// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
type DocumentExtractor interface {
	ExtractDocument(ctx context.Context, fileName, base64Data string) (string, error)
}

// PortfolioAdvisor sugiere líneas de crecimiento a partir de las actividades de un docente.
type PortfolioAdvisor interface {
	PortfolioAdvice(ctx context.Context, activities []entity.Activity) (string, error)
}

// LLMService define el puerto de salida hacia el proveedor de IA.
// Cualquier adaptador (Gemini, Anthropic, deshabilitado, mock) debe implementarlo.
type LLMService interface {
	DocumentExtractor
	PortfolioAdvisor
}

// ExtractionError falla del colaborador de IA. Quien llama decide explícitamente
// cómo degradarla (texto de reemplazo en extracción, mensaje de fallback en consejos).
type ExtractionError struct {
	Provider  string
	Operation string // "extract" | "advice"
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("AI %s (%s): %v", e.Operation, e.Provider, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }
