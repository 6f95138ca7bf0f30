package entity

// Role rol de un usuario del portafolio.
type Role string

// Roles válidos para User.
const (
	RoleTeacher Role = "TEACHER"
	RoleAdmin   Role = "ADMIN"
)

// Valid indica si r es un rol conocido.
func (r Role) Valid() bool {
	return r == RoleTeacher || r == RoleAdmin
}

// TeacherProfile datos profesionales editables por el docente.
type TeacherProfile struct {
	ContactInfo    string `json:"contactInfo"`
	Qualifications string `json:"qualifications"`
	Bio            string `json:"bio"`
	Specialization string `json:"specialization"`
}

// User representa un usuario del sistema. Los tags JSON definen el formato
// persistido en la colección "users".
type User struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Role     Role            `json:"role"`
	Password string          `json:"password,omitempty"` // texto plano o hash bcrypt según AUTH_PASSWORD_MODE
	Profile  *TeacherProfile `json:"profile,omitempty"`
}

// IsTeacher indica si el usuario es docente.
func (u *User) IsTeacher() bool { return u != nil && u.Role == RoleTeacher }

// Public devuelve una copia sin la contraseña.
func (u User) Public() User {
	u.Password = ""
	if u.Profile != nil {
		p := *u.Profile
		u.Profile = &p
	}
	return u
}
