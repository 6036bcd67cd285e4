package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrCategoryNotExists = errors.New("la categoría no existe")
)

// FieldError describe el fallo de validación de un campo concreto.
type FieldError struct {
	Field   string `json:"campo"`
	Message string `json:"mensaje"`
}

// ValidationError agrupa todos los fallos de validación de una petición.
// Se reportan todos los campos que fallan, no solo el primero.
type ValidationError struct {
	Details []FieldError
}

func (e *ValidationError) Error() string {
	return "validación fallida"
}

// NewValidationError construye el error a partir de los fallos acumulados.
// Devuelve nil si no hay fallos.
func NewValidationError(details []FieldError) error {
	if len(details) == 0 {
		return nil
	}
	return &ValidationError{Details: details}
}
