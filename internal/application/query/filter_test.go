package query_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Portafolio-api/internal/application/query"
	"github.com/jhoicas/Portafolio-api/internal/domain/entity"
)

func sample() []entity.Activity {
	return []entity.Activity{
		{ID: "1", TeacherID: "t1", Type: entity.ActivityPractice, Title: "Workshop", FileName: "w.pdf"},
		{ID: "2", TeacherID: "t2", Type: entity.ActivitySeminar, Title: "Evaluación"},
		{ID: "3", TeacherID: "t1", Type: entity.ActivitySeminar, Title: "TIC"},
		{ID: "4", TeacherID: "t1", Type: entity.ActivityPractice, Title: "Aula invertida"},
	}
}

func ids(acts []entity.Activity) []string {
	out := make([]string, 0, len(acts))
	for _, a := range acts {
		out = append(out, a.ID)
	}
	return out
}

func TestActivitiesForTeacher_SubconjuntoEnOrden(t *testing.T) {
	assert.Equal(t, []string{"1", "3", "4"}, ids(query.ActivitiesForTeacher(sample(), "t1")))
	assert.Equal(t, []string{"2"}, ids(query.ActivitiesForTeacher(sample(), "t2")))
	assert.Empty(t, query.ActivitiesForTeacher(sample(), "t9"))
	assert.NotNil(t, query.ActivitiesForTeacher(nil, "t1"))
}

func TestActivitiesForAdmin(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(query.ActivitiesForAdmin(sample(), "")))
	assert.Equal(t, []string{"2"}, ids(query.ActivitiesForAdmin(sample(), "t2")))
}

func TestActivitiesForAdmin_NoComparteSlice(t *testing.T) {
	all := sample()
	out := query.ActivitiesForAdmin(all, "")
	out[0].Title = "cambiado"
	assert.Equal(t, "Workshop", all[0].Title)
}

func TestCountByType(t *testing.T) {
	c := query.CountByType(sample())
	assert.Equal(t, 2, c.PracticeCount)
	assert.Equal(t, 2, c.SeminarCount)

	assert.Equal(t, query.TypeCounts{}, query.CountByType(nil))
}

func TestTeachers(t *testing.T) {
	users := []entity.User{
		{ID: "a", Role: entity.RoleAdmin},
		{ID: "t1", Role: entity.RoleTeacher},
		{ID: "t2", Role: entity.RoleTeacher},
	}
	got := query.Teachers(users)
	assert.Len(t, got, 2)
	assert.Equal(t, "t1", got[0].ID)
	assert.Equal(t, "t2", got[1].ID)
}

func TestComputeStats(t *testing.T) {
	s := query.ComputeStats(query.ActivitiesForTeacher(sample(), "t1"))
	assert.Equal(t, 2, s.PracticeCount)
	assert.Equal(t, 1, s.SeminarCount)
	assert.Equal(t, 1, s.TotalUploads)
	assert.True(t, decimal.RequireFromString("0.67").Equal(s.PracticeShare), s.PracticeShare.String())

	empty := query.ComputeStats(nil)
	assert.True(t, empty.PracticeShare.IsZero())
	assert.Zero(t, empty.TotalUploads)
}
