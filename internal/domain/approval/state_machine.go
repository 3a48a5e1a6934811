// Package approval implementa la máquina de estados del pipeline de aprobación
// de contenido: primero el cliente revisa el tema propuesto y, una vez aprobado,
// revisa el esquema del artículo. Componente de dominio puro: no persiste nada,
// devuelve la proyección del post con el estado actualizado.
package approval

import (
	"strings"

	"github.com/tu-usuario/agency-pro/internal/domain"
	"github.com/tu-usuario/agency-pro/internal/domain/entity"
)

// ReviewRequest transición solicitada por el cliente. Se interpreta como máximo
// un track por llamada: si ambos vienen informados, gana el track de tema
// (comportamiento heredado del sistema original, que evaluaba topicStatus primero).
type ReviewRequest struct {
	TopicStatus   *entity.TopicStatus
	OutlineStatus *entity.OutlineStatus
	Reason        string // obligatorio al rechazar; ignorado al aprobar
}

// Review valida la transición solicitada contra el estado actual del post.
// Transiciones legales:
//
//	tema:    pending -> approved | rejected
//	esquema: pending -> approved | rejected, solo con el tema ya aprobado
//
// Un rechazo sin motivo falla con ErrMissingReason y deja el post intacto.
// Una transición inalcanzable falla con ErrInvalidTransition. El track no
// solicitado nunca se toca.
func Review(post entity.Post, req ReviewRequest) (entity.Post, error) {
	switch {
	case req.TopicStatus != nil:
		return reviewTopic(post, *req.TopicStatus, req.Reason)
	case req.OutlineStatus != nil:
		return reviewOutline(post, *req.OutlineStatus, req.Reason)
	}
	return post, domain.ErrInvalidInput
}

func reviewTopic(post entity.Post, requested entity.TopicStatus, reason string) (entity.Post, error) {
	if post.TopicStatus != entity.TopicPending {
		return post, domain.ErrInvalidTransition
	}
	switch requested {
	case entity.TopicApproved:
		post.TopicStatus = entity.TopicApproved
		post.RejectReason = nil
	case entity.TopicRejected:
		if strings.TrimSpace(reason) == "" {
			return post, domain.ErrMissingReason
		}
		post.TopicStatus = entity.TopicRejected
		post.RejectReason = &reason
	default:
		return post, domain.ErrInvalidTransition
	}
	return post, nil
}

func reviewOutline(post entity.Post, requested entity.OutlineStatus, reason string) (entity.Post, error) {
	// El track de esquema solo existe con el tema aprobado y un esquema ya
	// puesto en revisión por el staff (vía administrativa).
	if post.TopicStatus != entity.TopicApproved {
		return post, domain.ErrInvalidTransition
	}
	if post.OutlineStatus == nil || *post.OutlineStatus != entity.OutlinePending {
		return post, domain.ErrInvalidTransition
	}
	switch requested {
	case entity.OutlineApproved:
		s := entity.OutlineApproved
		post.OutlineStatus = &s
		post.RejectReason = nil
	case entity.OutlineRejected:
		if strings.TrimSpace(reason) == "" {
			return post, domain.ErrMissingReason
		}
		s := entity.OutlineRejected
		post.OutlineStatus = &s
		post.RejectReason = &reason
	default:
		return post, domain.ErrInvalidTransition
	}
	return post, nil
}

// AdministerRequest campos a sobrescribir por la vía administrativa del staff.
// Los punteros nil se dejan como están; cualquier valor informado se aplica tal
// cual, incluidos los estados, sin pasar por las reglas de alcanzabilidad.
type AdministerRequest struct {
	Title         *string
	Outline       *string
	PublishedURL  *string
	TopicStatus   *entity.TopicStatus
	OutlineStatus *entity.OutlineStatus
}

// Administer aplica la sobrescritura administrativa. Es deliberadamente permisivo:
// modela la capacidad de back-office del staff para fijar cualquier campo o estado
// del post sin validación de transiciones. No es una puerta trasera accidental
// sino una operación con nombre propio, separada de Review.
func Administer(post entity.Post, req AdministerRequest) entity.Post {
	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Outline != nil {
		post.Outline = req.Outline
	}
	if req.PublishedURL != nil {
		post.PublishedURL = req.PublishedURL
	}
	if req.TopicStatus != nil {
		post.TopicStatus = *req.TopicStatus
	}
	if req.OutlineStatus != nil {
		post.OutlineStatus = req.OutlineStatus
	}
	return post
}
