package dto

import "github.com/shopspring/decimal"

// StatsDTO indicadores del portafolio.
type StatsDTO struct {
	PracticeCount int             `json:"practiceCount"`
	SeminarCount  int             `json:"seminarCount"`
	TotalUploads  int             `json:"totalUploads"`  // actividades con PDF
	PracticeShare decimal.Decimal `json:"practiceShare"` // prácticas / total, 2 decimales
}

// DashboardResponse respuesta de GET /api/dashboard.
//   - TEACHER: sus actividades, indicadores y consejos de IA.
//   - ADMIN: docentes, actividades (filtradas por SelectedTeacherID si viene) e indicadores.
type DashboardResponse struct {
	Role              string             `json:"role"`
	Stats             StatsDTO           `json:"stats"`
	Activities        []ActivityResponse `json:"activities"`
	Teachers          []UserResponse     `json:"teachers,omitempty"`
	SelectedTeacherID string             `json:"selectedTeacherId,omitempty"`
	Advice            string             `json:"advice,omitempty"`
}
