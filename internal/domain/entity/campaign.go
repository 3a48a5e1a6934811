package entity

import "time"

// Campaign campaña de marketing de contenidos. Siempre tiene exactamente un
// manager (staff o admin de agencia) y un usuario cliente que revisa el contenido.
type Campaign struct {
	ID        ID
	Name      string
	Client    string // nombre visible del cliente (texto libre)
	ManagerID ID     // responsable de la ejecución diaria
	UserID    ID     // principal cliente que aprueba/rechaza
	CreatedAt time.Time
	UpdatedAt time.Time
}
