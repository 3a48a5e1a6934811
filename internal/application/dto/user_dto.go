package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/agency-pro/internal/domain/entity"
)

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y el usuario sin password.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	Actor
	Name          string           `json:"name" validate:"required,min=1,max=200"`
	Email         string           `json:"email" validate:"required,email"`
	Password      string           `json:"password" validate:"required,min=8"`
	Role          string           `json:"role" validate:"required,oneof=superadmin agencyadmin staff client"`
	Company       string           `json:"company"`
	Contact       string           `json:"contact"`
	CreatorID     entity.ID        `json:"creatorId"`
	IncentiveRate *decimal.Decimal `json:"incentiveRate"` // solo staff
}

// UpdateUserRequest entrada para actualización parcial; nil = no tocar el campo.
type UpdateUserRequest struct {
	Actor
	Name          *string          `json:"name"`
	Email         *string          `json:"email"`
	Password      *string          `json:"password"`
	Role          *string          `json:"role"` // cambio de rol = actualización privilegiada
	Company       *string          `json:"company"`
	Contact       *string          `json:"contact"`
	IncentiveRate *decimal.Decimal `json:"incentiveRate"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID            entity.ID        `json:"id"`
	Name          string           `json:"name"`
	Email         string           `json:"email"`
	Role          string           `json:"role"`
	Company       string           `json:"company,omitempty"`
	Contact       string           `json:"contact,omitempty"`
	CreatorID     entity.ID        `json:"creatorId,omitempty"`
	IncentiveRate *decimal.Decimal `json:"incentiveRate,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}
