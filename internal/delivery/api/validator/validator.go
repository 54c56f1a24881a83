// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"reflect"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator validates bound request bodies.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their JSON names and understands the producttype tag.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	// Registering a tag with a non-empty name and a plain func never fails.
	_ = validate.RegisterValidation("producttype", func(fl validator.FieldLevel) bool {
		return entity.IsProductType(fl.Field().String())
	})

	return &Validator{validate: validate}
}

// Validate returns ErrValidationFailed with one entry per failing field.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		return errors.Wrap(err, "validate request")
	}

	details := make(map[string]string, len(invalid))
	for _, fieldErr := range invalid {
		details[fieldName(fieldErr)] = describe(fieldErr)
	}

	return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(details))
}

// fieldName drops the top-level struct name from the namespace.
func fieldName(fieldErr validator.FieldError) string {
	ns := fieldErr.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}

	return ns
}

func describe(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required", "required_without":
		return "es obligatorio"
	case "email":
		return "debe ser un email válido"
	case "producttype":
		return "tipo de producto desconocido"
	case "len":
		return "debe tener " + fieldErr.Param() + " caracteres"
	case "min":
		return "mínimo " + fieldErr.Param()
	case "gt", "gte", "lte":
		return "fuera de rango (" + fieldErr.Tag() + " " + fieldErr.Param() + ")"
	default:
		return "no cumple " + fieldErr.Tag()
	}
}
