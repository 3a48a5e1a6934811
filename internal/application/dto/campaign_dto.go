package dto

import (
	"time"

	"github.com/tu-usuario/agency-pro/internal/domain/entity"
)

// CreateCampaignRequest entrada para crear una campaña. El managerId es el que
// indique la petición; no hay chequeo de pertenencia en el momento de creación.
type CreateCampaignRequest struct {
	Actor
	Name      string    `json:"name" validate:"required,min=1,max=200"`
	Client    string    `json:"client" validate:"required"`
	ManagerID entity.ID `json:"managerId" validate:"required"`
	UserID    entity.ID `json:"userId" validate:"required"`
}

// CampaignUser datos visibles del manager o del cliente revisor en una campaña.
type CampaignUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CampaignResponse salida de una campaña. Manager y ClientUser vienen unidos en
// los listados; Posts solo se incluye en la consulta individual.
type CampaignResponse struct {
	ID         entity.ID      `json:"id"`
	Name       string         `json:"name"`
	Client     string         `json:"client"`
	ManagerID  entity.ID      `json:"managerId"`
	UserID     entity.ID      `json:"userId"`
	Manager    *CampaignUser  `json:"manager,omitempty"`
	ClientUser *CampaignUser  `json:"clientUser,omitempty"`
	Posts      []PostResponse `json:"posts,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}
