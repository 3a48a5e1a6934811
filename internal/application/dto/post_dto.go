package dto

import (
	"time"

	"github.com/tu-usuario/agency-pro/internal/domain/entity"
)

// CreatePostRequest entrada para crear un post dentro de una campaña.
type CreatePostRequest struct {
	Actor
	Title string `json:"title" validate:"required,min=1,max=300"`
}

// AdministerPostRequest sobrescritura administrativa (staff): cualquier campo
// informado se aplica tal cual, estados incluidos, sin validar transiciones.
type AdministerPostRequest struct {
	Actor
	Title         *string `json:"title"`
	Outline       *string `json:"outline"`
	PublishedURL  *string `json:"publishedUrl"`
	TopicStatus   *string `json:"topicStatus"`
	OutlineStatus *string `json:"outlineStatus"`
}

// ReviewPostRequest revisión del cliente: un solo track por llamada; el motivo
// es obligatorio al rechazar.
type ReviewPostRequest struct {
	Actor
	TopicStatus   *string `json:"topicStatus"`
	OutlineStatus *string `json:"outlineStatus"`
	RejectReason  string  `json:"rejectReason"`
}

// PostResponse salida de un post.
type PostResponse struct {
	ID            entity.ID `json:"id"`
	CampaignID    entity.ID `json:"campaignId"`
	Title         string    `json:"title"`
	Outline       *string   `json:"outline"`
	TopicStatus   string    `json:"topicStatus"`
	OutlineStatus *string   `json:"outlineStatus"`
	RejectReason  *string   `json:"rejectReason"`
	PublishedURL  *string   `json:"publishedUrl"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
