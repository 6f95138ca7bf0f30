package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Portafolio-api/internal/application/activity"
	"github.com/jhoicas/Portafolio-api/internal/application/dto"
	"github.com/jhoicas/Portafolio-api/internal/application/query"
	"github.com/jhoicas/Portafolio-api/internal/domain/entity"
)

// ActivityHandler CRUD de actividades (protegido).
type ActivityHandler struct {
	svc *activity.Service
}

// NewActivityHandler construye el handler.
func NewActivityHandler(svc *activity.Service) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

// List godoc
// @Summary      Listar actividades
// @Description  TEACHER: las propias. ADMIN: todas o las del docente indicado en teacher_id.
// @Tags         activities
// @Produce      json
// @Security     BearerAuth
// @Param        teacher_id  query  string  false  "filtro (solo ADMIN)"
// @Success      200  {object}  dto.ActivityListResponse
// @Router       /api/activities [get]
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	identity, ok := GetIdentity(c)
	if !ok {
		return unauthorized(c)
	}
	acts, err := h.svc.List(c.Context(), identity, c.Query("teacher_id"))
	if err != nil {
		return respondError(c, err)
	}
	counts := query.CountByType(acts)
	return c.JSON(dto.ActivityListResponse{
		Items:         dto.ToActivityResponses(acts),
		PracticeCount: counts.PracticeCount,
		SeminarCount:  counts.SeminarCount,
	})
}

// Create godoc
// @Summary      Registrar actividad (TEACHER)
// @Description  Si incluye fileData (PDF en base64) se extrae un resumen con IA.
// @Tags         activities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateActivityRequest  true  "actividad"
// @Success      201   {object}  dto.ActivityResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/activities [post]
func (h *ActivityHandler) Create(c *fiber.Ctx) error {
	identity, ok := GetIdentity(c)
	if !ok {
		return unauthorized(c)
	}
	var in dto.CreateActivityRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	a, err := h.svc.Create(c.Context(), identity, activity.Draft{
		Type:        entity.ActivityType(in.Type),
		Title:       in.Title,
		Description: &in.Description,
		FromDate:    in.FromDate,
		ToDate:      in.ToDate,
		FileName:    in.FileName,
		FileData:    in.FileData,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToActivityResponse(*a))
}

// GetByID godoc
// @Summary      Detalle de actividad
// @Tags         activities
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "id"
// @Success      200  {object}  dto.ActivityResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/activities/{id} [get]
func (h *ActivityHandler) GetByID(c *fiber.Ctx) error {
	identity, ok := GetIdentity(c)
	if !ok {
		return unauthorized(c)
	}
	a, err := h.svc.Get(c.Context(), identity, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToActivityResponse(*a))
}

// Update godoc
// @Summary      Editar actividad propia
// @Tags         activities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                     true  "id"
// @Param        body  body  dto.UpdateActivityRequest  true  "campos a cambiar"
// @Success      200   {object}  dto.ActivityResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/activities/{id} [put]
func (h *ActivityHandler) Update(c *fiber.Ctx) error {
	identity, ok := GetIdentity(c)
	if !ok {
		return unauthorized(c)
	}
	var in dto.UpdateActivityRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	a, err := h.svc.Update(c.Context(), identity, c.Params("id"), activity.Draft{
		Type:        entity.ActivityType(in.Type),
		Title:       in.Title,
		Description: in.Description,
		FromDate:    in.FromDate,
		ToDate:      in.ToDate,
		FileName:    in.FileName,
		FileData:    in.FileData,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToActivityResponse(*a))
}

// Delete godoc
// @Summary      Borrar actividad propia
// @Description  Borrar un id inexistente responde 204 igualmente.
// @Tags         activities
// @Security     BearerAuth
// @Param        id   path  string  true  "id"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/activities/{id} [delete]
func (h *ActivityHandler) Delete(c *fiber.Ctx) error {
	identity, ok := GetIdentity(c)
	if !ok {
		return unauthorized(c)
	}
	if err := h.svc.Delete(c.Context(), identity, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
