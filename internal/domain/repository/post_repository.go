package repository

import "github.com/tu-usuario/agency-pro/internal/domain/entity"

// PostRepository define el puerto de persistencia para Post.
type PostRepository interface {
	Create(p *entity.Post) error
	GetByID(id entity.ID) (*entity.Post, error)
	Update(p *entity.Post) error
	ListByCampaign(campaignID entity.ID) ([]*entity.Post, error)
	Delete(id entity.ID) error
}
