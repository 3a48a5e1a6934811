package dto

import "github.com/tu-usuario/agency-pro/internal/domain/entity"

// Actor descriptor del principal que ejecuta la petición. Normalmente se
// construye desde los claims del JWT; como fallback, los endpoints aceptan
// adminId/adminRole en query o body (la forma de referencia del binding REST).
type Actor struct {
	ID   entity.ID `json:"adminId" query:"adminId"`
	Role string    `json:"adminRole" query:"adminRole"`
}

// IsZero indica si no se pudo resolver ningún actor.
func (a Actor) IsZero() bool {
	return a.ID.IsZero() && a.Role == ""
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
