package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/agency-pro/internal/application/dto"
	"github.com/tu-usuario/agency-pro/internal/application/usecase"
	"github.com/tu-usuario/agency-pro/internal/domain"
	"github.com/tu-usuario/agency-pro/internal/domain/entity"
)

// CampaignHandler maneja las peticiones HTTP para Campaign.
type CampaignHandler struct {
	uc *usecase.CampaignUseCase
}

// NewCampaignHandler construye el handler.
func NewCampaignHandler(uc *usecase.CampaignUseCase) *CampaignHandler {
	return &CampaignHandler{uc: uc}
}

// List godoc
// @Summary      Listar campañas visibles para el actor
// @Tags         campaigns
// @Produce      json
// @Param        adminId    query  string  false  "ID del actor (fallback sin token)"
// @Param        adminRole  query  string  false  "Rol del actor (fallback sin token)"
// @Success      200  {array}   dto.CampaignResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /campaigns [get]
func (h *CampaignHandler) List(c *fiber.Ctx) error {
	actor := RequestActor(c)
	out, err := h.uc.List(actor)
	if err != nil {
		if err == domain.ErrForbidden {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener campaña con sus posts
// @Tags         campaigns
// @Produce      json
// @Param        id  path  string  true  "ID de la campaña"
// @Success      200  {object}  dto.CampaignResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /campaigns/{id} [get]
func (h *CampaignHandler) GetByID(c *fiber.Ctx) error {
	id := entity.NewID(c.Params("id"))
	if id.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	actor := RequestActor(c)
	out, err := h.uc.Get(actor, id)
	if err != nil {
		switch err {
		case domain.ErrCampaignNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "campaña no encontrada"})
		case domain.ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear campaña
// @Tags         campaigns
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCampaignRequest  true  "Datos de la campaña"
// @Success      201   {object}  dto.CampaignResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /campaigns [post]
func (h *CampaignHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCampaignRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Client == "" || in.ManagerID.IsZero() || in.UserID.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, client, managerId y userId son requeridos"})
	}
	actor := MergeActor(c, in.Actor)
	out, err := h.uc.Create(actor, in)
	if err != nil {
		switch err {
		case domain.ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
		case domain.ErrUserNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "manager o cliente no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListForClient godoc
// @Summary      Listar campañas de un usuario cliente, con sus posts
// @Tags         users
// @Produce      json
// @Param        id  path  string  true  "ID del usuario cliente"
// @Success      200  {array}  dto.CampaignResponse
// @Router       /users/{id}/campaigns [get]
func (h *CampaignHandler) ListForClient(c *fiber.Ctx) error {
	id := entity.NewID(c.Params("id"))
	if id.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.ListForClient(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}
