package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/Portafolio-api/internal/application/dto"
	"github.com/jhoicas/Portafolio-api/internal/application/query"
	"github.com/jhoicas/Portafolio-api/internal/application/session"
	"github.com/jhoicas/Portafolio-api/internal/domain"
	"github.com/jhoicas/Portafolio-api/internal/domain/entity"
	"github.com/jhoicas/Portafolio-api/internal/domain/repository"
)

// UserUseCase perfil del usuario autenticado y listado de docentes.
type UserUseCase struct {
	repo     repository.UserRepository
	sessions *session.Manager
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository, sessions *session.Manager) *UserUseCase {
	return &UserUseCase{repo: repo, sessions: sessions}
}

// GetMe devuelve el usuario de la sesión, leído del store (no de la instantánea).
func (uc *UserUseCase) GetMe(ctx context.Context, identity session.Identity) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.ToUserResponse(*user)
	return &out, nil
}

// UpdateProfile actualiza nombre y perfil del propio usuario y refresca la sesión.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, identity session.Identity, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}

	if name := strings.TrimSpace(in.Name); name != "" {
		user.Name = name
	}
	user.Profile = &entity.TeacherProfile{
		ContactInfo:    in.Profile.ContactInfo,
		Qualifications: in.Profile.Qualifications,
		Bio:            in.Profile.Bio,
		Specialization: in.Profile.Specialization,
	}
	if err := uc.repo.Update(ctx, *user); err != nil {
		return nil, err
	}
	if uc.sessions != nil {
		if err := uc.sessions.Refresh(ctx, *user); err != nil {
			return nil, err
		}
	}
	out := dto.ToUserResponse(*user)
	return &out, nil
}

// ListTeachers docentes registrados, solo para ADMIN.
func (uc *UserUseCase) ListTeachers(ctx context.Context, identity session.Identity) ([]dto.UserResponse, error) {
	if !identity.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToUserResponses(query.Teachers(users)), nil
}
