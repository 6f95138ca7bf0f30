package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Portafolio-api/internal/application/dto"
	"github.com/jhoicas/Portafolio-api/internal/application/ports"
	"github.com/jhoicas/Portafolio-api/internal/application/query"
	"github.com/jhoicas/Portafolio-api/internal/application/session"
	"github.com/jhoicas/Portafolio-api/internal/domain"
	"github.com/jhoicas/Portafolio-api/internal/domain/entity"
	"github.com/jhoicas/Portafolio-api/internal/domain/repository"
	"github.com/jhoicas/Portafolio-api/pkg/logger"
	"github.com/jhoicas/Portafolio-api/pkg/metrics"
)

// DashboardUseCase arma el tablero según el rol de la sesión.
type DashboardUseCase struct {
	users      repository.UserRepository
	activities repository.ActivityRepository
	advisor    ports.PortfolioAdvisor
	aiTimeout  time.Duration
	log        *logger.Logger
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(users repository.UserRepository, activities repository.ActivityRepository, advisor ports.PortfolioAdvisor, aiTimeout time.Duration, log *logger.Logger) *DashboardUseCase {
	if log == nil {
		log = logger.Nop()
	}
	if aiTimeout <= 0 {
		aiTimeout = 30 * time.Second
	}
	return &DashboardUseCase{
		users:      users,
		activities: activities,
		advisor:    advisor,
		aiTimeout:  aiTimeout,
		log:        log.Named("dashboard"),
	}
}

// Summary construye el DashboardResponse.
//
//   - TEACHER: actividades propias, indicadores y consejos de IA (sin actividades no
//     se consulta a la IA; ante un fallo se devuelve domain.AdviceUnavailable).
//   - ADMIN: docentes y actividades (todas o del docente seleccionado) con indicadores.
func (uc *DashboardUseCase) Summary(ctx context.Context, identity session.Identity, selectedTeacherID string) (*dto.DashboardResponse, error) {
	switch {
	case identity.IsTeacher():
		return uc.teacherSummary(ctx, identity)
	case identity.IsAdmin():
		return uc.adminSummary(ctx, selectedTeacherID)
	default:
		return nil, domain.ErrForbidden
	}
}

func (uc *DashboardUseCase) teacherSummary(ctx context.Context, identity session.Identity) (*dto.DashboardResponse, error) {
	all, err := uc.activities.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: listar actividades: %w", err)
	}
	mine := query.ActivitiesForTeacher(all, identity.UserID)

	out := &dto.DashboardResponse{
		Role:       string(entity.RoleTeacher),
		Stats:      toStatsDTO(query.ComputeStats(mine)),
		Activities: dto.ToActivityResponses(mine),
	}
	if len(mine) > 0 {
		out.Advice = uc.advice(ctx, mine)
	}
	return out, nil
}

// adminSummary carga usuarios y actividades en paralelo.
func (uc *DashboardUseCase) adminSummary(ctx context.Context, selectedTeacherID string) (*dto.DashboardResponse, error) {
	type usersResult struct {
		users []entity.User
		err   error
	}
	type activitiesResult struct {
		activities []entity.Activity
		err        error
	}

	usersCh := make(chan usersResult, 1)
	actsCh := make(chan activitiesResult, 1)

	go func() {
		users, err := uc.users.List(ctx)
		usersCh <- usersResult{users, err}
	}()
	go func() {
		acts, err := uc.activities.List(ctx)
		actsCh <- activitiesResult{acts, err}
	}()

	u := <-usersCh
	a := <-actsCh
	if u.err != nil {
		return nil, fmt.Errorf("dashboard: listar usuarios: %w", u.err)
	}
	if a.err != nil {
		return nil, fmt.Errorf("dashboard: listar actividades: %w", a.err)
	}

	visible := query.ActivitiesForAdmin(a.activities, selectedTeacherID)
	return &dto.DashboardResponse{
		Role:              string(entity.RoleAdmin),
		Stats:             toStatsDTO(query.ComputeStats(visible)),
		Activities:        dto.ToActivityResponses(visible),
		Teachers:          dto.ToUserResponses(query.Teachers(u.users)),
		SelectedTeacherID: selectedTeacherID,
	}, nil
}

// advice nunca falla: cualquier error del asesor se degrada a AdviceUnavailable.
func (uc *DashboardUseCase) advice(ctx context.Context, activities []entity.Activity) string {
	ctx, cancel := context.WithTimeout(ctx, uc.aiTimeout)
	defer cancel()

	text, err := uc.advisor.PortfolioAdvice(ctx, activities)
	if err != nil {
		var xerr *ports.ExtractionError
		if errors.As(err, &xerr) {
			uc.log.Warn().Err(err).Str("provider", xerr.Provider).Msg("consejos de IA no disponibles")
		} else {
			uc.log.Warn().Err(err).Msg("consejos de IA no disponibles")
		}
		metrics.AICall("advice", metrics.OutcomeFallback)
		return domain.AdviceUnavailable
	}
	metrics.AICall("advice", metrics.OutcomeOK)
	if strings.TrimSpace(text) == "" {
		return domain.AdviceEmpty
	}
	return text
}

func toStatsDTO(s query.Stats) dto.StatsDTO {
	return dto.StatsDTO{
		PracticeCount: s.PracticeCount,
		SeminarCount:  s.SeminarCount,
		TotalUploads:  s.TotalUploads,
		PracticeShare: s.PracticeShare,
	}
}
