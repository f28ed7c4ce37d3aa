// Package validation expone la instancia única de go-playground/validator que
// comparten la capa HTTP y los casos de uso.
package validation

import "github.com/go-playground/validator/v10"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct valida las etiquetas `validate` de v.
func Struct(v any) error {
	return validate.Struct(v)
}

// Var valida un valor suelto con la misma sintaxis de etiquetas, p. ej. "required,email".
func Var(v any, tag string) error {
	return validate.Var(v, tag)
}
