package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tu-usuario/agency-pro/internal/domain/entity"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// nullableID convierte un ID de dominio a *string para columnas NULLables
// (creator_id es NULL solo para el SuperAdmin inicial).
func nullableID(id entity.ID) *string {
	if id.IsZero() {
		return nil
	}
	s := id.String()
	return &s
}

// idFromNullable convierte el valor escaneado de una columna NULLable a ID.
func idFromNullable(s *string) entity.ID {
	if s == nil {
		return ""
	}
	return entity.NewID(*s)
}
