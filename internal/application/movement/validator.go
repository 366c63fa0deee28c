package movement

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jhoicas/printer-supplies-api/internal/domain"
	"github.com/jhoicas/printer-supplies-api/internal/domain/repository"
)

// Validator aplica las precondiciones de un movimiento antes de cualquier escritura.
// Las reglas estructurales (ids, cantidad) no tocan la BD; RequirePrinter solo lee.
type Validator struct {
	validate *validator.Validate
	catalog  repository.CatalogRepository
}

// NewValidator construye el validador. Registra la regla "id" (uuid en cualquier formato aceptado por uuid.Parse).
func NewValidator(catalog repository.CatalogRepository) *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			name = strings.SplitN(f.Tag.Get("query"), ",", 2)[0]
		}
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("id", func(fl validator.FieldLevel) bool {
		_, err := uuid.Parse(fl.Field().String())
		return err == nil
	})
	return &Validator{validate: v, catalog: catalog}
}

// Struct valida las etiquetas `validate` de un DTO y devuelve *domain.ValidationError.
func (v *Validator) Struct(in any) error {
	err := v.validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &domain.ValidationError{Fields: map[string]string{"body": err.Error()}}
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return &domain.ValidationError{Fields: fields}
}

// ID valida un identificador suelto (parámetro de ruta) y lo devuelve en forma canónica.
func (v *Validator) ID(field, raw string) (string, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", domain.NewValidationError(field, "id")
	}
	return id.String(), nil
}

// Quantity exige una cantidad estrictamente positiva.
func (v *Validator) Quantity(q int) error {
	if q <= 0 {
		return domain.ErrInvalidQuantity
	}
	return nil
}

// RequirePrinter verifica que la impresora exista.
func (v *Validator) RequirePrinter(ctx context.Context, printerID string) error {
	ok, err := v.catalog.PrinterExists(ctx, printerID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// canonicalID normaliza un id ya validado (minúsculas con guiones).
func canonicalID(raw string) string {
	id, err := uuid.Parse(raw)
	if err != nil {
		return raw
	}
	return id.String()
}
