package repository

import (
	"github.com/tu-usuario/agency-pro/internal/domain/authz"
	"github.com/tu-usuario/agency-pro/internal/domain/entity"
)

// CampaignSummary campaña con los datos visibles del manager y del cliente
// revisor ya unidos (para los listados, que siempre los muestran juntos).
type CampaignSummary struct {
	Campaign     entity.Campaign
	ManagerName  string
	ManagerEmail string
	ClientName   string
	ClientEmail  string
}

// CampaignRepository define el puerto de persistencia para Campaign.
type CampaignRepository interface {
	Create(c *entity.Campaign) error
	GetByID(id entity.ID) (*entity.Campaign, error)
	// ListScoped lista campañas visibles según el alcance de la política,
	// con manager y cliente unidos.
	ListScoped(scope authz.Scope) ([]*CampaignSummary, error)
}
