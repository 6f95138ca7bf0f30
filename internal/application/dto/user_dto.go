package dto

import "github.com/jhoicas/Portafolio-api/internal/domain/entity"

// RegisterRequest entrada para registro (auth). Sin role se registra como TEACHER.
type RegisterRequest struct {
	Name     string `json:"name" validate:"notblank,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"omitempty,role"`
}

// LoginRequest entrada para login. La comparación es exacta.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token JWT (lleva el id de sesión) y el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ProfileDTO datos profesionales del docente.
type ProfileDTO struct {
	ContactInfo    string `json:"contactInfo" validate:"max=500"`
	Qualifications string `json:"qualifications" validate:"max=2000"`
	Bio            string `json:"bio" validate:"max=4000"`
	Specialization string `json:"specialization" validate:"max=200"`
}

// UpdateProfileRequest entrada de PUT /api/me/profile. Name vacío conserva el actual.
type UpdateProfileRequest struct {
	Name    string     `json:"name" validate:"omitempty,notblank,max=200"`
	Profile ProfileDTO `json:"profile"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Email   string      `json:"email"`
	Role    string      `json:"role"`
	Profile *ProfileDTO `json:"profile,omitempty"`
}

// ToUserResponse convierte la entidad; nunca expone la contraseña.
func ToUserResponse(u entity.User) UserResponse {
	out := UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  string(u.Role),
	}
	if u.Profile != nil {
		out.Profile = &ProfileDTO{
			ContactInfo:    u.Profile.ContactInfo,
			Qualifications: u.Profile.Qualifications,
			Bio:            u.Profile.Bio,
			Specialization: u.Profile.Specialization,
		}
	}
	return out
}

// ToUserResponses convierte una lista conservando el orden.
func ToUserResponses(users []entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(u))
	}
	return out
}
