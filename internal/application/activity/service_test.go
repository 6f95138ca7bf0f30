package activity_test

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Portafolio-api/internal/application/activity"
	"github.com/jhoicas/Portafolio-api/internal/application/ports"
	"github.com/jhoicas/Portafolio-api/internal/application/session"
	"github.com/jhoicas/Portafolio-api/internal/domain"
	"github.com/jhoicas/Portafolio-api/internal/domain/entity"
	"github.com/jhoicas/Portafolio-api/internal/infrastructure/kv"
	"github.com/jhoicas/Portafolio-api/internal/infrastructure/store"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var pdfBase64 = base64.StdEncoding.EncodeToString([]byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\ntrailer\n%%EOF\n"))

// fakeExtractor devuelve text/err fijos y cuenta las llamadas.
type fakeExtractor struct {
	text    string
	err     error
	calls   int
	gotFn   string
	gotData string
	block   bool
}

func (f *fakeExtractor) ExtractDocument(ctx context.Context, fileName, data string) (string, error) {
	f.calls++
	f.gotFn = fileName
	f.gotData = data
	if f.block {
		<-ctx.Done()
		return "", &ports.ExtractionError{Provider: "fake", Operation: "extract", Err: ctx.Err()}
	}
	return f.text, f.err
}

type fixture struct {
	svc        *activity.Service
	activities *store.ActivityRepo
	teacher    session.Identity
	other      session.Identity
	admin      session.Identity
}

func newFixture(t *testing.T, ext ports.DocumentExtractor) fixture {
	t.Helper()
	ctx := context.Background()
	st := store.New(kv.NewMemoryStore(), "tps_")
	users := store.NewUserRepository(st)
	acts := store.NewActivityRepository(st)

	require.NoError(t, users.Add(ctx, entity.User{ID: "t1", Name: "Ana", Email: "a@x.com", Role: entity.RoleTeacher}))
	require.NoError(t, users.Add(ctx, entity.User{ID: "t2", Name: "Luis", Email: "l@x.com", Role: entity.RoleTeacher}))
	require.NoError(t, users.Add(ctx, entity.User{ID: "ad", Name: "Admin", Email: "ad@x.com", Role: entity.RoleAdmin}))

	return fixture{
		svc:        activity.NewService(acts, users, ext, 200*time.Millisecond, nil),
		activities: acts,
		teacher:    session.Identity{UserID: "t1", Role: entity.RoleTeacher},
		other:      session.Identity{UserID: "t2", Role: entity.RoleTeacher},
		admin:      session.Identity{UserID: "ad", Role: entity.RoleAdmin},
	}
}

func workshop() activity.Draft {
	return activity.Draft{
		Type:     entity.ActivityPractice,
		Title:    "Workshop",
		FromDate: "2024-01-01",
		ToDate:   "2024-01-02",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_SinDocumento_NoExtrae(t *testing.T) {
	ext := &fakeExtractor{text: "nunca"}
	f := newFixture(t, ext)

	a, err := f.svc.Create(context.Background(), f.teacher, workshop())
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "t1", a.TeacherID)
	assert.NotZero(t, a.CreatedAt)
	assert.Empty(t, a.ExtractedContent)
	assert.Zero(t, ext.calls)

	saved, err := f.activities.GetByID(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, *a, *saved)
}

func TestCreate_ConDocumento_GuardaExtraccion(t *testing.T) {
	ext := &fakeExtractor{text: "Resumen del taller"}
	f := newFixture(t, ext)

	d := workshop()
	d.FileName = "cert.pdf"
	d.FileData = "data:application/pdf;base64," + pdfBase64

	a, err := f.svc.Create(context.Background(), f.teacher, d)
	require.NoError(t, err)
	assert.Equal(t, "Resumen del taller", a.ExtractedContent)
	assert.Equal(t, "cert.pdf", a.FileName)
	assert.Equal(t, "cert.pdf", ext.gotFn)
	assert.Equal(t, pdfBase64, ext.gotData, "el extractor recibe base64 sin el prefijo data:")
	assert.Equal(t, 1, ext.calls)
}

func TestCreate_FalloExtraccion_GuardaTextoReemplazo(t *testing.T) {
	ext := &fakeExtractor{err: &ports.ExtractionError{Provider: "fake", Operation: "extract", Err: errors.New("503")}}
	f := newFixture(t, ext)

	d := workshop()
	d.FileName, d.FileData = "cert.pdf", pdfBase64

	a, err := f.svc.Create(context.Background(), f.teacher, d)
	require.NoError(t, err, "la extracción fallida no aborta el guardado")
	assert.Equal(t, domain.ExtractionPlaceholder, a.ExtractedContent)

	all, err := f.activities.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCreate_ExtraccionVacia(t *testing.T) {
	f := newFixture(t, &fakeExtractor{text: "   "})
	d := workshop()
	d.FileName, d.FileData = "cert.pdf", pdfBase64

	a, err := f.svc.Create(context.Background(), f.teacher, d)
	require.NoError(t, err)
	assert.Equal(t, domain.NoContentExtracted, a.ExtractedContent)
}

func TestCreate_Timeout_UsaTextoReemplazo(t *testing.T) {
	f := newFixture(t, &fakeExtractor{block: true})
	d := workshop()
	d.FileName, d.FileData = "cert.pdf", pdfBase64

	a, err := f.svc.Create(context.Background(), f.teacher, d)
	require.NoError(t, err)
	assert.Equal(t, domain.ExtractionPlaceholder, a.ExtractedContent)
}

func TestCreate_PayloadNoPDF(t *testing.T) {
	ext := &fakeExtractor{text: "x"}
	f := newFixture(t, ext)

	d := workshop()
	d.FileName = "foto.pdf"
	d.FileData = base64.StdEncoding.EncodeToString([]byte("\x89PNG\r\n\x1a\n0000IHDR"))
	_, err := f.svc.Create(context.Background(), f.teacher, d)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	d.FileData = "%%%no-base64%%%"
	_, err = f.svc.Create(context.Background(), f.teacher, d)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, ext.calls)
}

func TestCreate_SoloDocentesExistentes(t *testing.T) {
	f := newFixture(t, &fakeExtractor{})

	_, err := f.svc.Create(context.Background(), f.admin, workshop())
	assert.ErrorIs(t, err, domain.ErrForbidden)

	ghost := session.Identity{UserID: "ghost", Role: entity.RoleTeacher}
	_, err = f.svc.Create(context.Background(), ghost, workshop())
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreate_EntradaInvalida(t *testing.T) {
	f := newFixture(t, &fakeExtractor{})

	d := workshop()
	d.Type = "COURSE"
	_, err := f.svc.Create(context.Background(), f.teacher, d)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	d = workshop()
	d.Title = "  "
	_, err = f.svc.Create(context.Background(), f.teacher, d)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_FechasSinOrden(t *testing.T) {
	f := newFixture(t, &fakeExtractor{})
	d := workshop()
	d.FromDate, d.ToDate = "2024-02-01", "2024-01-01"

	_, err := f.svc.Create(context.Background(), f.teacher, d)
	assert.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Delete / Get / List
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_SinDocumento_ConservaExtraccion(t *testing.T) {
	ext := &fakeExtractor{text: "Resumen"}
	f := newFixture(t, ext)
	ctx := context.Background()

	d := workshop()
	d.FileName, d.FileData = "cert.pdf", pdfBase64
	a, err := f.svc.Create(ctx, f.teacher, d)
	require.NoError(t, err)

	upd, err := f.svc.Update(ctx, f.teacher, a.ID, activity.Draft{Title: "Workshop II"})
	require.NoError(t, err)
	assert.Equal(t, "Workshop II", upd.Title)
	assert.Equal(t, "Resumen", upd.ExtractedContent)
	assert.Equal(t, "cert.pdf", upd.FileName)
	assert.Equal(t, entity.ActivityPractice, upd.Type)
	assert.Equal(t, "2024-01-01", upd.FromDate)
	assert.Equal(t, a.CreatedAt, upd.CreatedAt)
	assert.Equal(t, 1, ext.calls)
}

func TestUpdate_Descripcion_NilConservaVaciaBorra(t *testing.T) {
	f := newFixture(t, &fakeExtractor{})
	ctx := context.Background()

	d := workshop()
	d.Description = ptr("old text")
	a, err := f.svc.Create(ctx, f.teacher, d)
	require.NoError(t, err)
	assert.Equal(t, "old text", a.Description)

	upd, err := f.svc.Update(ctx, f.teacher, a.ID, activity.Draft{Title: "Workshop II"})
	require.NoError(t, err)
	assert.Equal(t, "old text", upd.Description, "sin description se conserva")

	full := workshop()
	full.Description = ptr("")
	upd, err = f.svc.Update(ctx, f.teacher, a.ID, full)
	require.NoError(t, err)
	assert.Empty(t, upd.Description)

	saved, err := f.activities.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, saved.Description)
	assert.Equal(t, "Workshop", saved.Title)
}

func TestUpdate_ConDocumentoNuevo_ReExtrae(t *testing.T) {
	ext := &fakeExtractor{text: "v1"}
	f := newFixture(t, ext)
	ctx := context.Background()

	a, err := f.svc.Create(ctx, f.teacher, workshop())
	require.NoError(t, err)

	ext.text = "v2"
	upd, err := f.svc.Update(ctx, f.teacher, a.ID, activity.Draft{FileName: "nuevo.pdf", FileData: pdfBase64})
	require.NoError(t, err)
	assert.Equal(t, "v2", upd.ExtractedContent)
	assert.Equal(t, "nuevo.pdf", upd.FileName)
}

func TestUpdate_Errores(t *testing.T) {
	f := newFixture(t, &fakeExtractor{})
	ctx := context.Background()

	_, err := f.svc.Update(ctx, f.teacher, "no-existe", workshop())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	a, err := f.svc.Create(ctx, f.teacher, workshop())
	require.NoError(t, err)

	_, err = f.svc.Update(ctx, f.other, a.ID, activity.Draft{Title: "robado"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.svc.Update(ctx, f.admin, a.ID, activity.Draft{Title: "admin"})
	assert.ErrorIs(t, err, domain.ErrForbidden, "el administrador solo lee")
}

func TestDelete(t *testing.T) {
	f := newFixture(t, &fakeExtractor{})
	ctx := context.Background()

	a, err := f.svc.Create(ctx, f.teacher, workshop())
	require.NoError(t, err)

	assert.ErrorIs(t, f.svc.Delete(ctx, f.other, a.ID), domain.ErrForbidden)

	require.NoError(t, f.svc.Delete(ctx, f.teacher, a.ID))
	list, err := f.svc.List(ctx, f.teacher, "")
	require.NoError(t, err)
	assert.Empty(t, list)

	assert.NoError(t, f.svc.Delete(ctx, f.teacher, a.ID), "borrar un id inexistente no es error")
}

func TestGet_DuenoOAdmin(t *testing.T) {
	f := newFixture(t, &fakeExtractor{})
	ctx := context.Background()

	a, err := f.svc.Create(ctx, f.teacher, workshop())
	require.NoError(t, err)

	_, err = f.svc.Get(ctx, f.teacher, a.ID)
	assert.NoError(t, err)
	_, err = f.svc.Get(ctx, f.admin, a.ID)
	assert.NoError(t, err)
	_, err = f.svc.Get(ctx, f.other, a.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = f.svc.Get(ctx, f.admin, "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_PorRol(t *testing.T) {
	f := newFixture(t, &fakeExtractor{})
	ctx := context.Background()

	_, err := f.svc.Create(ctx, f.teacher, workshop())
	require.NoError(t, err)
	d := workshop()
	d.Type, d.Title = entity.ActivitySeminar, "Seminario"
	_, err = f.svc.Create(ctx, f.other, d)
	require.NoError(t, err)

	mine, err := f.svc.List(ctx, f.teacher, "t2")
	require.NoError(t, err)
	require.Len(t, mine, 1, "un docente ignora el filtro y ve solo lo suyo")
	assert.Equal(t, "Workshop", mine[0].Title)

	all, err := f.svc.List(ctx, f.admin, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := f.svc.List(ctx, f.admin, "t2")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Seminario", filtered[0].Title)
}

func ptr(s string) *string { return &s }
