package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jhoicas/Portafolio-api/internal/domain/entity"
)

const (
	opExtract = "extract"
	opAdvice  = "advice"

	// maxResponseBytes límite de lectura de la respuesta del proveedor.
	maxResponseBytes = 1 << 20
)

// extractPrompt acompaña al PDF en la petición de extracción.
const extractPrompt = `Please analyze this PDF document named "%s". Extract the key details including the title, main topics discussed, dates mentioned, and a comprehensive summary of the professional achievement or training it represents. Format the output in a clean, structured way for a professional teacher portfolio.`

// advicePrompt recibe el JSON de las actividades del docente.
const advicePrompt = `Based on these teaching activities: %s, provide a brief, professional summary of the teacher's professional growth and 2 suggestions for future areas of practice or seminars to round out their portfolio. Keep it concise and professional.`

// activityForPrompt vista reducida de una actividad para el prompt de consejos
// (sin identificadores internos ni resúmenes largos).
type activityForPrompt struct {
	Type        entity.ActivityType `json:"type"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	FromDate    string              `json:"fromDate"`
	ToDate      string              `json:"toDate"`
	HasProof    bool                `json:"hasProof"`
}

func buildAdvicePrompt(activities []entity.Activity) (string, error) {
	view := make([]activityForPrompt, 0, len(activities))
	for _, a := range activities {
		view = append(view, activityForPrompt{
			Type:        a.Type,
			Title:       a.Title,
			Description: a.Description,
			FromDate:    a.FromDate,
			ToDate:      a.ToDate,
			HasProof:    a.HasUpload(),
		})
	}
	b, err := json.Marshal(view)
	if err != nil {
		return "", fmt.Errorf("serializar actividades: %w", err)
	}
	return fmt.Sprintf(advicePrompt, string(b)), nil
}

// postJSON envía payload como JSON y devuelve status y cuerpo (limitado a maxResponseBytes).
func postJSON(ctx context.Context, client *http.Client, url string, headers map[string]string, payload any) (int, []byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return 0, nil, fmt.Errorf("timeout o cancelación: %w", ctx.Err())
		}
		return 0, nil, fmt.Errorf("llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("leer respuesta: %w", err)
	}
	return resp.StatusCode, raw, nil
}
