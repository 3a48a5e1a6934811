package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/agency-pro/internal/application/dto"
	"github.com/tu-usuario/agency-pro/internal/application/usecase"
	"github.com/tu-usuario/agency-pro/internal/domain"
	"github.com/tu-usuario/agency-pro/internal/domain/entity"
)

// PostHandler maneja las peticiones HTTP para Post.
type PostHandler struct {
	uc *usecase.PostUseCase
}

// NewPostHandler construye el handler.
func NewPostHandler(uc *usecase.PostUseCase) *PostHandler {
	return &PostHandler{uc: uc}
}

// Create godoc
// @Summary      Crear post en una campaña (tema pendiente)
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        campaignId  path  string  true  "ID de la campaña"
// @Param        body  body  dto.CreatePostRequest  true  "Título del post"
// @Success      201   {object}  dto.PostResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /campaigns/{campaignId}/posts [post]
func (h *PostHandler) Create(c *fiber.Ctx) error {
	campaignID := entity.NewID(c.Params("campaignId"))
	if campaignID.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "campaignId es requerido"})
	}
	var in dto.CreatePostRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title es requerido"})
	}
	actor := MergeActor(c, in.Actor)
	out, err := h.uc.Create(actor, campaignID, in)
	if err != nil {
		return postError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Administer godoc
// @Summary      Sobrescritura administrativa de un post (staff)
// @Description  Aplica tal cual los campos informados, estados incluidos, sin validar transiciones.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del post"
// @Param        body  body  dto.AdministerPostRequest  true  "Campos a sobrescribir"
// @Success      200   {object}  dto.PostResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /posts/{id} [put]
func (h *PostHandler) Administer(c *fiber.Ctx) error {
	id := entity.NewID(c.Params("id"))
	if id.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.AdministerPostRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	actor := MergeActor(c, in.Actor)
	out, err := h.uc.Administer(actor, id, in)
	if err != nil {
		return postError(c, err)
	}
	return c.JSON(out)
}

// Review godoc
// @Summary      Revisión del cliente (tema o esquema)
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del post"
// @Param        body  body  dto.ReviewPostRequest  true  "Track a revisar y motivo si se rechaza"
// @Success      200   {object}  dto.PostResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /posts/{id}/status [put]
func (h *PostHandler) Review(c *fiber.Ctx) error {
	id := entity.NewID(c.Params("id"))
	if id.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.ReviewPostRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	actor := MergeActor(c, in.Actor)
	out, err := h.uc.Review(actor, id, in)
	if err != nil {
		return postError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar post
// @Tags         posts
// @Param        id  path  string  true  "ID del post"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c *fiber.Ctx) error {
	id := entity.NewID(c.Params("id"))
	if id.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var body dto.Actor
	_ = c.BodyParser(&body)
	actor := MergeActor(c, body)
	if err := h.uc.Delete(actor, id); err != nil {
		return postError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func postError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrPostNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "post no encontrado"})
	case domain.ErrCampaignNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "campaña no encontrada"})
	case domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	case domain.ErrInvalidTransition:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: "transición de estado no permitida"})
	case domain.ErrMissingReason:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_REASON", Message: "el rechazo requiere un motivo"})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "debe indicarse topicStatus u outlineStatus"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}
