// Package query deriva vistas de solo lectura sobre las colecciones.
// Funciones puras: no modifican la entrada y conservan el orden de inserción.
package query

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Portafolio-api/internal/domain/entity"
)

// TypeCounts cantidad de actividades por tipo.
type TypeCounts struct {
	PracticeCount int
	SeminarCount  int
}

// Stats indicadores del tablero.
type Stats struct {
	TypeCounts
	TotalUploads  int
	PracticeShare decimal.Decimal
}

// ActivitiesForTeacher actividades cuyo TeacherID coincide.
func ActivitiesForTeacher(all []entity.Activity, teacherID string) []entity.Activity {
	out := make([]entity.Activity, 0)
	for _, a := range all {
		if a.TeacherID == teacherID {
			out = append(out, a)
		}
	}
	return out
}

// ActivitiesForAdmin todas las actividades, o las del docente seleccionado.
func ActivitiesForAdmin(all []entity.Activity, selectedTeacherID string) []entity.Activity {
	if selectedTeacherID == "" {
		out := make([]entity.Activity, len(all))
		copy(out, all)
		return out
	}
	return ActivitiesForTeacher(all, selectedTeacherID)
}

// CountByType cuenta prácticas y seminarios.
func CountByType(activities []entity.Activity) TypeCounts {
	var c TypeCounts
	for _, a := range activities {
		switch a.Type {
		case entity.ActivityPractice:
			c.PracticeCount++
		case entity.ActivitySeminar:
			c.SeminarCount++
		}
	}
	return c
}

// Teachers usuarios con rol TEACHER.
func Teachers(users []entity.User) []entity.User {
	out := make([]entity.User, 0)
	for _, u := range users {
		if u.Role == entity.RoleTeacher {
			out = append(out, u)
		}
	}
	return out
}

// ComputeStats contadores, PDFs subidos y proporción de prácticas (0 sin actividades).
func ComputeStats(activities []entity.Activity) Stats {
	s := Stats{TypeCounts: CountByType(activities), PracticeShare: decimal.Zero}
	for _, a := range activities {
		if a.HasUpload() {
			s.TotalUploads++
		}
	}
	if total := len(activities); total > 0 {
		s.PracticeShare = decimal.NewFromInt(int64(s.PracticeCount)).
			Div(decimal.NewFromInt(int64(total))).
			Round(2)
	}
	return s
}
