package entity

import (
	"fmt"

	"github.com/jhoicas/nexus-coffee/internal/domain"
)

// ErrFieldRequired envuelve domain.ErrInvalidInput con el nombre del campo.
func ErrFieldRequired(field string) error {
	return fmt.Errorf("%w: %s es obligatorio", domain.ErrInvalidInput, field)
}

// ErrFieldInvalid envuelve domain.ErrInvalidInput con el motivo.
func ErrFieldInvalid(field, reason string) error {
	return fmt.Errorf("%w: %s %s", domain.ErrInvalidInput, field, reason)
}
