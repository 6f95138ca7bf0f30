package dto

import "github.com/jhoicas/Portafolio-api/internal/domain/entity"

// CreateActivityRequest entrada de POST /api/activities.
// FileData es el PDF en base64 (acepta también data URL); no se persiste.
type CreateActivityRequest struct {
	Type        string `json:"type" validate:"required,activity_type"`
	Title       string `json:"title" validate:"notblank,max=300"`
	Description string `json:"description" validate:"max=5000"`
	FromDate    string `json:"fromDate" validate:"required,datetime=2006-01-02"`
	ToDate      string `json:"toDate" validate:"required,datetime=2006-01-02"`
	FileName    string `json:"fileName" validate:"required_with=FileData,max=255"`
	FileData    string `json:"fileData"`
}

// UpdateActivityRequest entrada de PUT /api/activities/:id. Los campos vacíos
// conservan el valor anterior, salvo description: omitida se conserva y "" la borra.
type UpdateActivityRequest struct {
	Type        string  `json:"type" validate:"omitempty,activity_type"`
	Title       string  `json:"title" validate:"omitempty,notblank,max=300"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	FromDate    string  `json:"fromDate" validate:"omitempty,datetime=2006-01-02"`
	ToDate      string  `json:"toDate" validate:"omitempty,datetime=2006-01-02"`
	FileName    string  `json:"fileName" validate:"required_with=FileData,max=255"`
	FileData    string  `json:"fileData"`
}

// ActivityResponse salida de una actividad.
type ActivityResponse struct {
	ID               string `json:"id"`
	TeacherID        string `json:"teacherId"`
	Type             string `json:"type"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	FromDate         string `json:"fromDate"`
	ToDate           string `json:"toDate"`
	FileName         string `json:"fileName,omitempty"`
	ExtractedContent string `json:"extractedContent,omitempty"`
	CreatedAt        int64  `json:"createdAt"`
}

// ActivityListResponse listado con los contadores por tipo.
type ActivityListResponse struct {
	Items         []ActivityResponse `json:"items"`
	PracticeCount int                `json:"practiceCount"`
	SeminarCount  int                `json:"seminarCount"`
}

// ToActivityResponse convierte la entidad.
func ToActivityResponse(a entity.Activity) ActivityResponse {
	return ActivityResponse{
		ID:               a.ID,
		TeacherID:        a.TeacherID,
		Type:             string(a.Type),
		Title:            a.Title,
		Description:      a.Description,
		FromDate:         a.FromDate,
		ToDate:           a.ToDate,
		FileName:         a.FileName,
		ExtractedContent: a.ExtractedContent,
		CreatedAt:        a.CreatedAt,
	}
}

// ToActivityResponses convierte una lista conservando el orden.
func ToActivityResponses(activities []entity.Activity) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(activities))
	for _, a := range activities {
		out = append(out, ToActivityResponse(a))
	}
	return out
}
