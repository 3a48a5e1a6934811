package entity

import (
	"encoding/json"
	"strings"
)

// ID identificador normalizado de una entidad. El sistema original comparaba
// identificadores que llegaban a veces como string y a veces como número;
// aquí todo se normaliza a string en el borde y Equal es la única vía de comparación.
type ID string

// NewID construye un ID normalizado desde un string.
func NewID(s string) ID {
	return ID(strings.TrimSpace(s))
}

// IsZero indica si el ID está vacío.
func (id ID) IsZero() bool {
	return strings.TrimSpace(string(id)) == ""
}

// Equal compara dos IDs por su forma normalizada.
func (id ID) Equal(other ID) bool {
	a := strings.TrimSpace(string(id))
	b := strings.TrimSpace(string(other))
	return a != "" && a == b
}

// String devuelve la forma normalizada.
func (id ID) String() string {
	return strings.TrimSpace(string(id))
}

// UnmarshalJSON acepta tanto "7" como 7: los clientes del sistema original
// enviaban identificadores numéricos o string según el endpoint.
func (id *ID) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*id = ""
		return nil
	}
	if len(raw) >= 2 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = NewID(s)
		return nil
	}
	// Valor numérico: se conserva su representación textual.
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = NewID(n.String())
	return nil
}

// MarshalJSON serializa siempre como string.
func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}
