package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrItemNotFound    = errors.New("el item no existe como toner ni como drum")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrInvalidQuantity = errors.New("la cantidad debe ser mayor que cero")
	ErrNotModified     = errors.New("sin cambios para aplicar")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrForbidden       = errors.New("acceso denegado")
)

// ValidationError agrupa los campos rechazados (campo -> regla). Envuelve ErrInvalidInput.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError construye el error con un único campo.
func NewValidationError(field, rule string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: rule}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return fmt.Sprintf("%s (%s)", ErrInvalidInput.Error(), strings.Join(parts, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// DatabaseError envuelve un fallo del driver. Op identifica la sentencia que falló.
type DatabaseError struct {
	Op  string
	Err error
}

// NewDatabaseError construye el error; devuelve nil si err es nil.
func NewDatabaseError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &DatabaseError{Op: op, Err: err}
}

func (e *DatabaseError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *DatabaseError) Unwrap() error { return e.Err }
