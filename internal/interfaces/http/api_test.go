package http_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Portafolio-api/internal/application/activity"
	"github.com/jhoicas/Portafolio-api/internal/application/auth"
	"github.com/jhoicas/Portafolio-api/internal/application/dto"
	"github.com/jhoicas/Portafolio-api/internal/application/ports"
	"github.com/jhoicas/Portafolio-api/internal/application/session"
	"github.com/jhoicas/Portafolio-api/internal/application/usecase"
	"github.com/jhoicas/Portafolio-api/internal/domain"
	"github.com/jhoicas/Portafolio-api/internal/domain/entity"
	"github.com/jhoicas/Portafolio-api/internal/infrastructure/ai"
	"github.com/jhoicas/Portafolio-api/internal/infrastructure/kv"
	"github.com/jhoicas/Portafolio-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Portafolio-api/internal/infrastructure/store"
	apphttp "github.com/jhoicas/Portafolio-api/internal/interfaces/http"
)

// stubLLM extracción y consejos fijos.
type stubLLM struct{}

func (stubLLM) ExtractDocument(context.Context, string, string) (string, error) {
	return "Resumen extraído", nil
}

func (stubLLM) PortfolioAdvice(context.Context, []entity.Activity) (string, error) {
	return "Siga así", nil
}

type apiClient struct {
	t   *testing.T
	app *fiber.App
}

func newAPI(t *testing.T, llm ports.LLMService) *apiClient {
	t.Helper()
	st := store.New(kv.NewMemoryStore(), "tps_")
	users := store.NewUserRepository(st)
	acts := store.NewActivityRepository(st)
	sessions := session.NewManager(store.NewSessionRepository(st))

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      auth.NewAuthUseCase(users, sessions, testJWTConfig, auth.PasswordPlain, nil),
		UserUC:      usecase.NewUserUseCase(users, sessions),
		Activities:  activity.NewService(acts, users, llm, time.Second, nil),
		DashboardUC: usecase.NewDashboardUseCase(users, acts, llm, time.Second, nil),
		PortfolioUC: usecase.NewPortfolioUseCase(users, acts, pdf.NewMarotoPDFGenerator()),
	})
	return &apiClient{t: t, app: app}
}

// do envía body como JSON (si no es nil) y decodifica la respuesta en out (si no es nil).
func (a *apiClient) do(method, path, token string, body, out any) int {
	a.t.Helper()
	var rdr io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		rdr = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rdr)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(a.t, err)
	defer resp.Body.Close()
	if out != nil {
		raw, _ := io.ReadAll(resp.Body)
		if len(raw) > 0 {
			require.NoError(a.t, json.Unmarshal(raw, out), string(raw))
		}
	}
	return resp.StatusCode
}

func (a *apiClient) register(name, email, role string) dto.LoginResponse {
	a.t.Helper()
	var out dto.LoginResponse
	status := a.do(http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{Name: name, Email: email, Password: "pw", Role: role}, &out)
	require.Equal(a.t, http.StatusCreated, status)
	return out
}

// Flujo completo: registro → login → password incorrecta → crear práctica → listar.
func TestAPI_FlujoDocente(t *testing.T) {
	api := newAPI(t, stubLLM{})

	reg := api.register("t1", "a@x.com", "")
	assert.Equal(t, "TEACHER", reg.User.Role)

	var login dto.LoginResponse
	require.Equal(t, http.StatusOK, api.do(http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "a@x.com", Password: "pw"}, &login))
	require.NotEmpty(t, login.Token)

	var errResp dto.ErrorResponse
	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "a@x.com", Password: "bad"}, &errResp))
	assert.Equal(t, "INVALID_CREDENTIALS", errResp.Code)

	var created dto.ActivityResponse
	status := api.do(http.MethodPost, "/api/activities", login.Token, dto.CreateActivityRequest{
		Type: "PRACTICE", Title: "Workshop", FromDate: "2024-01-01", ToDate: "2024-01-02",
	}, &created)
	require.Equal(t, http.StatusCreated, status)
	assert.Empty(t, created.ExtractedContent)

	var list dto.ActivityListResponse
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/activities", login.Token, nil, &list))
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Workshop", list.Items[0].Title)
	assert.Equal(t, reg.User.ID, list.Items[0].TeacherID)
	assert.Equal(t, 1, list.PracticeCount)
}

func TestAPI_RegistroDuplicado(t *testing.T) {
	api := newAPI(t, stubLLM{})
	api.register("t1", "a@x.com", "")

	var errResp dto.ErrorResponse
	status := api.do(http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{Name: "x", Email: "a@x.com", Password: "zz"}, &errResp)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "EMAIL_EXISTS", errResp.Code)
}

func TestAPI_ValidacionDeEntrada(t *testing.T) {
	api := newAPI(t, stubLLM{})
	tok := api.register("t1", "a@x.com", "").Token

	var errResp dto.ErrorResponse
	status := api.do(http.MethodPost, "/api/activities", tok, dto.CreateActivityRequest{
		Type: "COURSE", Title: " ", FromDate: "01/01/2024", ToDate: "2024-01-02",
	}, &errResp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", errResp.Code)

	fields := map[string]bool{}
	for _, f := range errResp.Fields {
		fields[f.Field] = true
	}
	assert.True(t, fields["type"])
	assert.True(t, fields["title"])
	assert.True(t, fields["fromDate"])
}

func TestAPI_ActividadConPDF_YEdicion(t *testing.T) {
	api := newAPI(t, stubLLM{})
	tok := api.register("t1", "a@x.com", "").Token

	pdfData := base64.StdEncoding.EncodeToString([]byte("%PDF-1.4\n%%EOF\n"))
	var created dto.ActivityResponse
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/api/activities", tok, dto.CreateActivityRequest{
		Type: "SEMINAR", Title: "TIC", FromDate: "2024-03-01", ToDate: "2024-03-01",
		FileName: "tic.pdf", FileData: pdfData,
	}, &created))
	assert.Equal(t, "Resumen extraído", created.ExtractedContent)

	var updated dto.ActivityResponse
	require.Equal(t, http.StatusOK, api.do(http.MethodPut, "/api/activities/"+created.ID, tok,
		dto.UpdateActivityRequest{Title: "TIC avanzado"}, &updated))
	assert.Equal(t, "TIC avanzado", updated.Title)
	assert.Equal(t, "Resumen extraído", updated.ExtractedContent)

	require.Equal(t, http.StatusNoContent, api.do(http.MethodDelete, "/api/activities/"+created.ID, tok, nil, nil))
	assert.Equal(t, http.StatusNoContent, api.do(http.MethodDelete, "/api/activities/"+created.ID, tok, nil, nil))
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/api/activities/"+created.ID, tok, nil, nil))
}

func TestAPI_EdicionBorraDescripcion(t *testing.T) {
	api := newAPI(t, stubLLM{})
	tok := api.register("t1", "a@x.com", "").Token

	var created dto.ActivityResponse
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/api/activities", tok, dto.CreateActivityRequest{
		Type: "PRACTICE", Title: "Taller", Description: "old text", FromDate: "2024-01-01", ToDate: "2024-01-02",
	}, &created))

	var updated dto.ActivityResponse
	require.Equal(t, http.StatusOK, api.do(http.MethodPut, "/api/activities/"+created.ID, tok,
		map[string]any{"title": "Taller II"}, &updated))
	assert.Equal(t, "old text", updated.Description)

	require.Equal(t, http.StatusOK, api.do(http.MethodPut, "/api/activities/"+created.ID, tok,
		map[string]any{"title": "Taller II", "description": ""}, &updated))
	assert.Empty(t, updated.Description)
	assert.Equal(t, "Taller II", updated.Title)
}

func TestAPI_ExtraccionDeshabilitada_GuardaTextoReemplazo(t *testing.T) {
	api := newAPI(t, ai.DisabledService{})
	tok := api.register("t1", "a@x.com", "").Token

	pdfData := base64.StdEncoding.EncodeToString([]byte("%PDF-1.4\n%%EOF\n"))
	var created dto.ActivityResponse
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/api/activities", tok, dto.CreateActivityRequest{
		Type: "PRACTICE", Title: "Taller", FromDate: "2024-01-01", ToDate: "2024-01-02",
		FileName: "t.pdf", FileData: pdfData,
	}, &created))
	assert.Equal(t, domain.ExtractionPlaceholder, created.ExtractedContent)

	var dash dto.DashboardResponse
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/dashboard", tok, nil, &dash))
	assert.Equal(t, domain.AdviceUnavailable, dash.Advice)
}

func TestAPI_AdminYDocentes(t *testing.T) {
	api := newAPI(t, stubLLM{})
	t1 := api.register("Ana", "a@x.com", "")
	api.register("Luis", "l@x.com", "")
	admin := api.register("Admin", "admin@x.com", "ADMIN")

	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/api/activities", t1.Token, dto.CreateActivityRequest{
		Type: "PRACTICE", Title: "Workshop", FromDate: "2024-01-01", ToDate: "2024-01-02",
	}, nil))

	// El administrador no registra actividades.
	assert.Equal(t, http.StatusForbidden, api.do(http.MethodPost, "/api/activities", admin.Token, dto.CreateActivityRequest{
		Type: "PRACTICE", Title: "x", FromDate: "2024-01-01", ToDate: "2024-01-02",
	}, nil))

	var teachers []dto.UserResponse
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/teachers", admin.Token, nil, &teachers))
	assert.Len(t, teachers, 2)
	assert.Equal(t, http.StatusForbidden, api.do(http.MethodGet, "/api/teachers", t1.Token, nil, nil))

	var dash dto.DashboardResponse
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/dashboard?teacher_id="+t1.User.ID, admin.Token, nil, &dash))
	assert.Equal(t, "ADMIN", dash.Role)
	assert.Len(t, dash.Activities, 1)
	assert.Len(t, dash.Teachers, 2)
}

func TestAPI_PerfilYPortafolio(t *testing.T) {
	api := newAPI(t, stubLLM{})
	t1 := api.register("Ana", "a@x.com", "")
	t2 := api.register("Luis", "l@x.com", "")

	var me dto.UserResponse
	require.Equal(t, http.StatusOK, api.do(http.MethodPut, "/api/me/profile", t1.Token, dto.UpdateProfileRequest{
		Profile: dto.ProfileDTO{Specialization: "Física"},
	}, &me))
	require.NotNil(t, me.Profile)
	assert.Equal(t, "Física", me.Profile.Specialization)
	assert.Equal(t, "Ana", me.Name)

	req := httptest.NewRequest(http.MethodGet, "/api/portfolio/"+t1.User.ID+"/pdf", nil)
	req.Header.Set("Authorization", "Bearer "+t1.Token)
	resp, err := api.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "portafolio-ana.pdf")
	body, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))

	assert.Equal(t, http.StatusForbidden, api.do(http.MethodGet, "/api/portfolio/"+t1.User.ID+"/pdf", t2.Token, nil, nil))
}

func TestAPI_Logout(t *testing.T) {
	api := newAPI(t, stubLLM{})
	tok := api.register("t1", "a@x.com", "").Token

	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/me", tok, nil, nil))
	require.Equal(t, http.StatusNoContent, api.do(http.MethodPost, "/api/auth/logout", tok, nil, nil))
	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodGet, "/api/me", tok, nil, nil))
}
