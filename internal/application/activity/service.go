// Package activity casos de uso de las actividades del portafolio docente.
package activity

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/jhoicas/Portafolio-api/internal/application/ports"
	"github.com/jhoicas/Portafolio-api/internal/application/query"
	"github.com/jhoicas/Portafolio-api/internal/application/session"
	"github.com/jhoicas/Portafolio-api/internal/domain"
	"github.com/jhoicas/Portafolio-api/internal/domain/entity"
	"github.com/jhoicas/Portafolio-api/internal/domain/repository"
	"github.com/jhoicas/Portafolio-api/pkg/logger"
	"github.com/jhoicas/Portafolio-api/pkg/metrics"
)

const pdfMIME = "application/pdf"

// Draft datos enviados por el docente. FileData es el PDF en base64 (o data URL);
// solo se usa para extraer el resumen y nunca se persiste. Description nil
// conserva la descripción al editar; un puntero a "" la borra.
type Draft struct {
	Type        entity.ActivityType
	Title       string
	Description *string
	FromDate    string
	ToDate      string
	FileName    string
	FileData    string
}

// HasDocument indica si el borrador trae un PDF para extraer.
func (d Draft) HasDocument() bool { return d.FileData != "" && d.FileName != "" }

// Service crea, edita, borra y consulta actividades.
type Service struct {
	activities repository.ActivityRepository
	users      repository.UserRepository
	extractor  ports.DocumentExtractor
	aiTimeout  time.Duration
	log        *logger.Logger
	now        func() time.Time
}

// NewService construye el servicio. aiTimeout acota cada llamada de extracción.
func NewService(activities repository.ActivityRepository, users repository.UserRepository, extractor ports.DocumentExtractor, aiTimeout time.Duration, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	if aiTimeout <= 0 {
		aiTimeout = 30 * time.Second
	}
	return &Service{
		activities: activities,
		users:      users,
		extractor:  extractor,
		aiTimeout:  aiTimeout,
		log:        log.Named("activity"),
		now:        time.Now,
	}
}

// Create registra una actividad del docente autenticado. Si trae PDF se extrae su
// contenido; un fallo de extracción no impide guardar (queda el texto de reemplazo).
func (s *Service) Create(ctx context.Context, owner session.Identity, d Draft) (*entity.Activity, error) {
	if err := s.requireTeacher(ctx, owner); err != nil {
		return nil, err
	}
	if !d.Type.Valid() {
		return nil, fmt.Errorf("%w: tipo de actividad %q", domain.ErrInvalidInput, d.Type)
	}
	if strings.TrimSpace(d.Title) == "" {
		return nil, fmt.Errorf("%w: título vacío", domain.ErrInvalidInput)
	}

	a := entity.Activity{
		ID:          uuid.New().String(),
		TeacherID:   owner.UserID,
		Type:        d.Type,
		Title:       d.Title,
		Description: deref(d.Description),
		FromDate:    d.FromDate,
		ToDate:      d.ToDate,
		CreatedAt:   s.now().UnixMilli(),
	}
	if d.HasDocument() {
		content, err := s.extract(ctx, d)
		if err != nil {
			return nil, err
		}
		a.FileName = d.FileName
		a.ExtractedContent = content
	}

	if err := s.activities.Add(ctx, a); err != nil {
		s.log.Error().Err(err).Str("teacher_id", owner.UserID).Msg("guardar actividad")
		return nil, err
	}
	metrics.ActivityMutation("create")
	return &a, nil
}

// Update edita una actividad propia. Los campos vacíos del borrador conservan el
// valor anterior (Description solo si es nil); sin PDF nuevo se mantiene el
// contenido extraído previo.
func (s *Service) Update(ctx context.Context, owner session.Identity, id string, d Draft) (*entity.Activity, error) {
	existing, err := s.activities.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	if existing.TeacherID != owner.UserID {
		return nil, domain.ErrForbidden
	}
	if d.Type != "" && !d.Type.Valid() {
		return nil, fmt.Errorf("%w: tipo de actividad %q", domain.ErrInvalidInput, d.Type)
	}

	a := merge(*existing, d)
	if d.HasDocument() {
		content, err := s.extract(ctx, d)
		if err != nil {
			return nil, err
		}
		a.FileName = d.FileName
		a.ExtractedContent = content
	}

	if err := s.activities.Update(ctx, a); err != nil {
		return nil, err
	}
	metrics.ActivityMutation("update")
	return &a, nil
}

// Delete elimina una actividad propia. Un id inexistente no es error.
func (s *Service) Delete(ctx context.Context, owner session.Identity, id string) error {
	existing, err := s.activities.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return nil
	}
	if existing.TeacherID != owner.UserID {
		return domain.ErrForbidden
	}
	if err := s.activities.Delete(ctx, id); err != nil {
		return err
	}
	metrics.ActivityMutation("delete")
	return nil
}

// Get devuelve una actividad al dueño o a un administrador.
func (s *Service) Get(ctx context.Context, identity session.Identity, id string) (*entity.Activity, error) {
	a, err := s.activities.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	if !identity.IsAdmin() && a.TeacherID != identity.UserID {
		return nil, domain.ErrForbidden
	}
	return a, nil
}

// List actividades visibles: las propias para un docente; para un administrador
// todas o las del docente seleccionado.
func (s *Service) List(ctx context.Context, identity session.Identity, selectedTeacherID string) ([]entity.Activity, error) {
	all, err := s.activities.List(ctx)
	if err != nil {
		return nil, err
	}
	if identity.IsAdmin() {
		return query.ActivitiesForAdmin(all, selectedTeacherID), nil
	}
	return query.ActivitiesForTeacher(all, identity.UserID), nil
}

// requireTeacher el dueño debe existir en el store con rol TEACHER.
func (s *Service) requireTeacher(ctx context.Context, owner session.Identity) error {
	if !owner.IsTeacher() {
		return domain.ErrForbidden
	}
	u, err := s.users.GetByID(ctx, owner.UserID)
	if err != nil {
		return err
	}
	if !u.IsTeacher() {
		return domain.ErrForbidden
	}
	return nil
}

// extract valida que el payload sea un PDF y obtiene su resumen. Solo devuelve
// error si el payload es inválido; las fallas del proveedor se degradan al texto
// de reemplazo.
func (s *Service) extract(ctx context.Context, d Draft) (string, error) {
	data := stripDataURL(d.FileData)
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", fmt.Errorf("%w: fileData no es base64", domain.ErrInvalidInput)
	}
	if mt := mimetype.Detect(raw); !mt.Is(pdfMIME) {
		return "", fmt.Errorf("%w: se esperaba un PDF, se recibió %s", domain.ErrInvalidInput, mt.String())
	}

	ctx, cancel := context.WithTimeout(ctx, s.aiTimeout)
	defer cancel()

	text, err := s.extractor.ExtractDocument(ctx, d.FileName, data)
	if err != nil {
		var xerr *ports.ExtractionError
		if !errors.As(err, &xerr) {
			xerr = &ports.ExtractionError{Provider: "unknown", Operation: "extract", Err: err}
		}
		metrics.AICall("extract", metrics.OutcomeFallback)
		s.log.Warn().Err(xerr).Str("file_name", d.FileName).Msg("extracción fallida, se guarda texto de reemplazo")
		return domain.ExtractionPlaceholder, nil
	}
	metrics.AICall("extract", metrics.OutcomeOK)
	if strings.TrimSpace(text) == "" {
		return domain.NoContentExtracted, nil
	}
	return text, nil
}

func merge(a entity.Activity, d Draft) entity.Activity {
	if d.Type != "" {
		a.Type = d.Type
	}
	if strings.TrimSpace(d.Title) != "" {
		a.Title = d.Title
	}
	if d.Description != nil {
		a.Description = *d.Description
	}
	if d.FromDate != "" {
		a.FromDate = d.FromDate
	}
	if d.ToDate != "" {
		a.ToDate = d.ToDate
	}
	return a
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// stripDataURL acepta "data:application/pdf;base64,XXXX" además del base64 puro.
func stripDataURL(data string) string {
	if strings.HasPrefix(data, "data:") {
		if i := strings.Index(data, ","); i >= 0 {
			return data[i+1:]
		}
	}
	return data
}
