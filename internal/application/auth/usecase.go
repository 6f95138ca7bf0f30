package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Portafolio-api/internal/application/dto"
	"github.com/jhoicas/Portafolio-api/internal/application/session"
	"github.com/jhoicas/Portafolio-api/internal/domain"
	"github.com/jhoicas/Portafolio-api/internal/domain/entity"
	"github.com/jhoicas/Portafolio-api/internal/domain/repository"
	"github.com/jhoicas/Portafolio-api/pkg/jwt"
	"github.com/jhoicas/Portafolio-api/pkg/logger"
	"github.com/jhoicas/Portafolio-api/pkg/metrics"
)

// Modos de almacenamiento de contraseñas (AUTH_PASSWORD_MODE).
const (
	PasswordPlain  = "plain"
	PasswordBcrypt = "bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login, logout y resolución de sesión.
type AuthUseCase struct {
	userRepo     repository.UserRepository
	sessions     *session.Manager
	jwtCfg       JWTConfig
	passwordMode string
	log          *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth. passwordMode vacío equivale a "plain".
func NewAuthUseCase(userRepo repository.UserRepository, sessions *session.Manager, jwtCfg JWTConfig, passwordMode string, log *logger.Logger) *AuthUseCase {
	if passwordMode == "" {
		passwordMode = PasswordPlain
	}
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{
		userRepo:     userRepo,
		sessions:     sessions,
		jwtCfg:       jwtCfg,
		passwordMode: passwordMode,
		log:          log.Named("auth"),
	}
}

// Register crea el usuario y abre su sesión. ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.LoginResponse, error) {
	role := entity.Role(in.Role)
	if role == "" {
		role = entity.RoleTeacher
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	stored, err := uc.storePassword(in.Password)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = in.Email
	}
	user := entity.User{
		ID:       uuid.New().String(),
		Name:     name,
		Email:    in.Email,
		Role:     role,
		Password: stored,
	}
	// La unicidad del email la garantiza el store bajo su mutex.
	if err := uc.userRepo.Add(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			metrics.AuthAttempt("register", false)
			uc.log.Info().Str("email", in.Email).Msg("registro rechazado: email duplicado")
		}
		return nil, err
	}
	metrics.AuthAttempt("register", true)
	uc.log.Info().Str("user_id", user.ID).Str("role", string(role)).Msg("usuario registrado")

	return uc.openSession(ctx, user)
}

// Login verifica email/password (coincidencia exacta), abre la sesión y retorna token + usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !uc.passwordMatches(user.Password, in.Password) {
		metrics.AuthAttempt("login", false)
		return nil, domain.ErrInvalidCredentials
	}
	metrics.AuthAttempt("login", true)
	uc.log.Info().Str("user_id", user.ID).Msg("login")

	return uc.openSession(ctx, *user)
}

// Logout elimina la sesión persistida.
func (uc *AuthUseCase) Logout(ctx context.Context, identity session.Identity) error {
	return uc.sessions.Close(ctx, identity.SessionID)
}

// Resolve valida el JWT y reconstruye la identidad desde la sesión persistida.
func (uc *AuthUseCase) Resolve(ctx context.Context, token string) (session.Identity, error) {
	_, sessionID, _, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return session.Identity{}, domain.ErrUnauthorized
	}
	return uc.sessions.Resolve(ctx, sessionID)
}

func (uc *AuthUseCase) openSession(ctx context.Context, user entity.User) (*dto.LoginResponse, error) {
	identity, err := uc.sessions.Open(ctx, user)
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, identity.SessionID, string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	}, nil
}

func (uc *AuthUseCase) storePassword(password string) (string, error) {
	if uc.passwordMode != PasswordBcrypt {
		return password, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (uc *AuthUseCase) passwordMatches(stored, given string) bool {
	if uc.passwordMode == PasswordBcrypt {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return stored == given
}
