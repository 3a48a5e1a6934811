package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role rol cerrado de un usuario. Cualquier valor fuera de estas constantes
// se trata como desconocido y la política de autorización lo deniega.
type Role string

// Roles válidos para User.
const (
	RoleSuperAdmin  Role = "superadmin"
	RoleAgencyAdmin Role = "agencyadmin"
	RoleStaff       Role = "staff"
	RoleClient      Role = "client"
)

// ValidRole indica si el valor corresponde a un rol conocido.
func ValidRole(r Role) bool {
	switch r {
	case RoleSuperAdmin, RoleAgencyAdmin, RoleStaff, RoleClient:
		return true
	}
	return false
}

// User representa un principal del sistema (admin de agencia, staff o cliente).
type User struct {
	ID            ID
	Name          string
	Email         string
	PasswordHash  string // bcrypt hash, nunca plano en dominio después de persistir
	Role          Role
	Company       string
	Contact       string
	CreatorID     ID              // vacío solo para el SuperAdmin inicial
	IncentiveRate decimal.Decimal // comisión, solo aplica a staff
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
