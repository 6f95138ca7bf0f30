package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/Portafolio-api/internal/application/ports"
	"github.com/jhoicas/Portafolio-api/internal/domain/entity"
)

// Verificar en tiempo de compilación que AnthropicService implementa LLMService.
var _ ports.LLMService = (*AnthropicService)(nil)

const (
	anthropicDefaultBaseURL = "https://api.anthropic.com"
	anthropicVersion        = "2023-06-01"
)

// AnthropicService adaptador que implementa LLMService usando la API REST de Anthropic (Claude).
// Usa net/http de la librería estándar de Go; no requiere el SDK oficial.
type AnthropicService struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewAnthropicService construye el adaptador.
// model suele ser "claude-3-5-haiku-20241022".
// Si apiKey está vacío las llamadas devuelven error descriptivo en lugar de panic.
func NewAnthropicService(apiKey, model string) *AnthropicService {
	return &AnthropicService{
		apiKey:  apiKey,
		model:   model,
		baseURL: anthropicDefaultBaseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// WithBaseURL apunta el adaptador a otro endpoint (proxy o servidor de pruebas).
func (s *AnthropicService) WithBaseURL(baseURL string) *AnthropicService {
	s.baseURL = strings.TrimRight(baseURL, "/")
	return s
}

// ── Estructuras internas del protocolo Anthropic Messages API ─────────────────

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string           `json:"role"`
	Content []anthropicBlock `json:"content"`
}

type anthropicBlock struct {
	Type   string           `json:"type"` // "text" | "document"
	Text   string           `json:"text,omitempty"`
	Source *anthropicSource `json:"source,omitempty"`
}

type anthropicSource struct {
	Type      string `json:"type"` // "base64"
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// ExtractDocument envía el PDF como bloque "document" y el prompt como texto.
func (s *AnthropicService) ExtractDocument(ctx context.Context, fileName, base64Data string) (string, error) {
	blocks := []anthropicBlock{
		{
			Type: "document",
			Source: &anthropicSource{
				Type:      "base64",
				MediaType: "application/pdf",
				Data:      base64Data,
			},
		},
		{Type: "text", Text: fmt.Sprintf(extractPrompt, fileName)},
	}
	return s.send(ctx, opExtract, blocks, 2048)
}

// PortfolioAdvice pide un resumen de crecimiento profesional y dos sugerencias.
func (s *AnthropicService) PortfolioAdvice(ctx context.Context, activities []entity.Activity) (string, error) {
	prompt, err := buildAdvicePrompt(activities)
	if err != nil {
		return "", s.fail(opAdvice, err)
	}
	return s.send(ctx, opAdvice, []anthropicBlock{{Type: "text", Text: prompt}}, 1024)
}

func (s *AnthropicService) send(ctx context.Context, op string, blocks []anthropicBlock, maxTokens int) (string, error) {
	if s.apiKey == "" {
		return "", s.fail(op, errors.New("ANTHROPIC_API_KEY no configurado"))
	}

	payload := anthropicRequest{
		Model:     s.model,
		MaxTokens: maxTokens,
		Messages:  []anthropicMessage{{Role: "user", Content: blocks}},
	}
	headers := map[string]string{
		"x-api-key":         s.apiKey,
		"anthropic-version": anthropicVersion,
	}

	status, raw, err := postJSON(ctx, s.httpClient, s.baseURL+"/v1/messages", headers, payload)
	if err != nil {
		return "", s.fail(op, err)
	}

	// Manejar errores HTTP de la API de Anthropic
	if status != http.StatusOK {
		var errResp anthropicResponse
		if jsonErr := json.Unmarshal(raw, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", s.fail(op, fmt.Errorf("Anthropic error (%s): %s", errResp.Error.Type, errResp.Error.Message))
		}
		return "", s.fail(op, fmt.Errorf("Anthropic HTTP %d", status))
	}

	var anthResp anthropicResponse
	if err := json.Unmarshal(raw, &anthResp); err != nil {
		return "", s.fail(op, fmt.Errorf("deserializar respuesta Anthropic: %w", err))
	}

	var sb strings.Builder
	for _, c := range anthResp.Content {
		if c.Type == "text" {
			sb.WriteString(c.Text)
		}
	}
	return strings.TrimSpace(sb.String()), nil
}

func (s *AnthropicService) fail(op string, err error) error {
	return &ports.ExtractionError{Provider: "anthropic", Operation: op, Err: err}
}
