// Package usecase implementa el servicio de flujo de trabajo: el único componente
// con efectos secundarios. Cada operación autoriza al actor con la política,
// valida la transición con la máquina de estados cuando aplica y solo entonces
// escribe a través del repositorio. La escritura es siempre el último paso, de
// modo que una cancelación del transporte equivale a "no se escribió nada".
package usecase

import (
	"github.com/tu-usuario/agency-pro/internal/application/dto"
	"github.com/tu-usuario/agency-pro/internal/domain/authz"
	"github.com/tu-usuario/agency-pro/internal/domain/entity"
)

// actorOf convierte el descriptor de la petición al actor de la política.
// Un rol desconocido pasa tal cual: la tabla de políticas lo deniega (fail closed).
func actorOf(a dto.Actor) authz.Actor {
	return authz.Actor{ID: a.ID, Role: entity.Role(a.Role)}
}

func toPostResponse(p *entity.Post) dto.PostResponse {
	var outline *string
	if p.OutlineStatus != nil {
		s := string(*p.OutlineStatus)
		outline = &s
	}
	return dto.PostResponse{
		ID:            p.ID,
		CampaignID:    p.CampaignID,
		Title:         p.Title,
		Outline:       p.Outline,
		TopicStatus:   string(p.TopicStatus),
		OutlineStatus: outline,
		RejectReason:  p.RejectReason,
		PublishedURL:  p.PublishedURL,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
