package ai

import (
	"fmt"

	"github.com/jhoicas/Portafolio-api/internal/application/ports"
	"github.com/jhoicas/Portafolio-api/pkg/config"
)

// NewFromConfig selecciona el adaptador según AI_PROVIDER.
func NewFromConfig(cfg config.AIConfig) (ports.LLMService, error) {
	switch cfg.Provider {
	case "gemini":
		return NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel), nil
	case "anthropic":
		return NewAnthropicService(cfg.AnthropicAPIKey, cfg.AnthropicModel), nil
	case "none", "":
		return DisabledService{}, nil
	default:
		return nil, fmt.Errorf("AI: proveedor desconocido %q", cfg.Provider)
	}
}
