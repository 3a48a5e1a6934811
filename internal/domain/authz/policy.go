// Package authz contiene la política de autorización del sistema como componente
// de dominio puro: decide, sin efectos secundarios, si un principal puede ejecutar
// una acción sobre un recurso y qué filas puede ver en los listados.
//
// La política es una tabla (rol, acción) -> regla. Cualquier combinación ausente
// se deniega (fail closed), incluidos roles desconocidos.
package authz

import (
	"github.com/tu-usuario/agency-pro/internal/domain"
	"github.com/tu-usuario/agency-pro/internal/domain/entity"
)

// Action acción autorizable sobre un recurso.
type Action string

// Acciones conocidas por la política.
const (
	ActionListUsers      Action = "users.list"
	ActionCreateUser     Action = "users.create"
	ActionUpdateUser     Action = "users.update"
	ActionDeleteUser     Action = "users.delete"
	ActionListCampaigns  Action = "campaigns.list"
	ActionViewCampaign   Action = "campaigns.view"
	ActionCreateCampaign Action = "campaigns.create"
	ActionCreatePost     Action = "posts.create"
	ActionUpdatePost     Action = "posts.update"
	ActionDeletePost     Action = "posts.delete"
	ActionReviewPost     Action = "posts.review"
)

// Actor principal que ejecuta la acción (extraído del token o del descriptor adminId/adminRole).
type Actor struct {
	ID   entity.ID
	Role entity.Role
}

// UserTarget proyección del usuario objetivo que necesita la política.
type UserTarget struct {
	ID        entity.ID
	CreatorID entity.ID
	Role      entity.Role
}

// CampaignTarget proyección de la campaña dueña del recurso objetivo.
// Para un post, es la campaña a la que pertenece.
type CampaignTarget struct {
	ManagerID entity.ID
	ClientID  entity.ID // campaign.userId: el principal cliente que revisa
}

// Target recurso objetivo de la acción. Según la acción se consulta User o Campaign.
type Target struct {
	User     *UserTarget
	Campaign *CampaignTarget
}

// rule regla de decisión pura para una combinación (rol, acción).
type rule func(a Actor, t Target) bool

func allow(Actor, Target) bool { return true }

// manageUser regla compartida para UpdateUser/DeleteUser de agencyadmin y staff:
// nunca sobre un superadmin; en lo demás solo sobre sí mismo o sobre usuarios que creó.
func manageUser(a Actor, t Target) bool {
	if t.User == nil {
		return false
	}
	if t.User.Role == entity.RoleSuperAdmin {
		return false
	}
	return t.User.ID.Equal(a.ID) || t.User.CreatorID.Equal(a.ID)
}

// createClientOnly staff solo puede crear usuarios con rol client.
func createClientOnly(_ Actor, t Target) bool {
	return t.User != nil && t.User.Role == entity.RoleClient
}

// reviewOwnCampaign el cliente solo revisa posts de campañas donde él es el revisor.
func reviewOwnCampaign(a Actor, t Target) bool {
	return t.Campaign != nil && t.Campaign.ClientID.Equal(a.ID)
}

// policy tabla de decisión. El superadmin no aparece: se permite todo antes de consultarla.
var policy = map[entity.Role]map[Action]rule{
	entity.RoleAgencyAdmin: {
		ActionListUsers:      allow, // el alcance lo aplica ScopeFilter
		ActionCreateUser:     allow,
		ActionUpdateUser:     manageUser,
		ActionDeleteUser:     manageUser,
		ActionListCampaigns:  allow,
		ActionViewCampaign:   allow,
		ActionCreateCampaign: allow,
		ActionCreatePost:     allow,
		ActionUpdatePost:     allow,
		ActionDeletePost:     allow,
		// ReviewPost ausente: la revisión es del cliente; el staff usa la vía administrativa.
	},
	entity.RoleStaff: {
		ActionListUsers:      allow,
		ActionCreateUser:     createClientOnly,
		ActionUpdateUser:     manageUser,
		ActionDeleteUser:     manageUser,
		ActionListCampaigns:  allow,
		ActionViewCampaign:   allow,
		ActionCreateCampaign: allow,
		ActionCreatePost:     allow,
		ActionUpdatePost:     allow,
		ActionDeletePost:     allow,
	},
	entity.RoleClient: {
		ActionListCampaigns: allow, // filtrado a campañas donde userId = actor
		ActionViewCampaign:  reviewOwnCampaign,
		ActionReviewPost:    reviewOwnCampaign,
	},
}

// CanPerform decide si el actor puede ejecutar la acción sobre el objetivo.
// Retorna nil si se permite o domain.ErrForbidden si se deniega.
func CanPerform(actor Actor, action Action, target Target) error {
	if actor.Role == entity.RoleSuperAdmin {
		return nil
	}
	actions, ok := policy[actor.Role]
	if !ok {
		return domain.ErrForbidden
	}
	r, ok := actions[action]
	if !ok {
		return domain.ErrForbidden
	}
	if !r(actor, target) {
		return domain.ErrForbidden
	}
	return nil
}

// ResourceKind tipo de recurso listable.
type ResourceKind string

// Recursos con listado filtrado por actor.
const (
	KindUsers     ResourceKind = "users"
	KindCampaigns ResourceKind = "campaigns"
)

// Scope describe qué filas puede ver el actor. Los repositorios lo traducen
// a predicados SQL; es la única definición del filtrado implícito de los listados.
type Scope struct {
	All       bool      // sin restricción (superadmin)
	SelfID    entity.ID // users: incluye al propio actor
	CreatorID entity.ID // users: incluye a los usuarios creados por el actor
	ManagerID entity.ID // campaigns: campañas gestionadas por el actor
	ClientID  entity.ID // campaigns: campañas revisadas por el actor
}

// ScopeFilter devuelve el alcance de visibilidad del actor para un tipo de recurso.
// Retorna domain.ErrForbidden si el actor no puede listar ese recurso en absoluto.
func ScopeFilter(actor Actor, kind ResourceKind) (Scope, error) {
	if actor.Role == entity.RoleSuperAdmin {
		return Scope{All: true}, nil
	}
	switch kind {
	case KindUsers:
		switch actor.Role {
		case entity.RoleAgencyAdmin, entity.RoleStaff:
			// Visibilidad propia más todos los usuarios que el actor creó.
			return Scope{SelfID: actor.ID, CreatorID: actor.ID}, nil
		}
	case KindCampaigns:
		switch actor.Role {
		case entity.RoleAgencyAdmin, entity.RoleStaff:
			// Solo campañas gestionadas personalmente, no las de toda la agencia.
			return Scope{ManagerID: actor.ID}, nil
		case entity.RoleClient:
			return Scope{ClientID: actor.ID}, nil
		}
	}
	return Scope{}, domain.ErrForbidden
}
