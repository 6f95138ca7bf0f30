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

// Verificar en tiempo de compilación que GeminiService implementa LLMService.
var _ ports.LLMService = (*GeminiService)(nil)

const geminiDefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiService adaptador que implementa LLMService llamando a la API REST de Google Gemini.
type GeminiService struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewGeminiService construye el adaptador. model suele ser "gemini-3-flash-preview".
// Si apiKey está vacío, las llamadas devuelven error en lugar de fallar en producción.
func NewGeminiService(apiKey, model string) *GeminiService {
	return &GeminiService{
		apiKey:  apiKey,
		model:   model,
		baseURL: geminiDefaultBaseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second, // timeout de red; el caller también pone WithTimeout
		},
	}
}

// WithBaseURL apunta el adaptador a otro endpoint (proxy o servidor de pruebas).
func (s *GeminiService) WithBaseURL(baseURL string) *GeminiService {
	s.baseURL = strings.TrimRight(baseURL, "/")
	return s
}

// ── Estructuras internas para la API de Gemini ────────────────────────────────

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig *genConfig      `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *geminiBlob `json:"inline_data,omitempty"`
}

type geminiBlob struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type genConfig struct {
	Temperature    *float32        `json:"temperature,omitempty"`
	ThinkingConfig *thinkingConfig `json:"thinkingConfig,omitempty"`
}

type thinkingConfig struct {
	ThinkingBudget int `json:"thinkingBudget"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// ExtractDocument envía el PDF como inline_data junto al prompt de extracción.
func (s *GeminiService) ExtractDocument(ctx context.Context, fileName, base64Data string) (string, error) {
	parts := []geminiPart{
		{InlineData: &geminiBlob{MimeType: "application/pdf", Data: base64Data}},
		{Text: fmt.Sprintf(extractPrompt, fileName)},
	}
	// Sin "thinking": la extracción es directa y así se reduce la latencia.
	cfg := &genConfig{ThinkingConfig: &thinkingConfig{ThinkingBudget: 0}}
	return s.generate(ctx, opExtract, parts, cfg)
}

// PortfolioAdvice pide un resumen de crecimiento profesional y dos sugerencias.
func (s *GeminiService) PortfolioAdvice(ctx context.Context, activities []entity.Activity) (string, error) {
	prompt, err := buildAdvicePrompt(activities)
	if err != nil {
		return "", s.fail(opAdvice, err)
	}
	return s.generate(ctx, opAdvice, []geminiPart{{Text: prompt}}, nil)
}

func (s *GeminiService) generate(ctx context.Context, op string, parts []geminiPart, cfg *genConfig) (string, error) {
	if s.apiKey == "" {
		return "", s.fail(op, errors.New("GEMINI_API_KEY no configurado"))
	}

	payload := geminiRequest{
		Contents:         []geminiContent{{Role: "user", Parts: parts}},
		GenerationConfig: cfg,
	}
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.baseURL, s.model, s.apiKey)

	status, raw, err := postJSON(ctx, s.httpClient, url, nil, payload)
	if err != nil {
		return "", s.fail(op, err)
	}

	if status != http.StatusOK {
		// Intentar extraer el mensaje de error de Gemini
		var errResp geminiResponse
		if jsonErr := json.Unmarshal(raw, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", s.fail(op, fmt.Errorf("Gemini error %d: %s", errResp.Error.Code, errResp.Error.Message))
		}
		return "", s.fail(op, fmt.Errorf("Gemini HTTP %d", status))
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(raw, &gemResp); err != nil {
		return "", s.fail(op, fmt.Errorf("deserializar respuesta Gemini: %w", err))
	}
	if len(gemResp.Candidates) == 0 {
		return "", nil
	}

	var sb strings.Builder
	for _, p := range gemResp.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return strings.TrimSpace(sb.String()), nil
}

func (s *GeminiService) fail(op string, err error) error {
	return &ports.ExtractionError{Provider: "gemini", Operation: op, Err: err}
}
