package validation

import (
	"errors"
	"sort"
	"strings"
	"unicode/utf8"
)

// ErrInvalidInput es el error base de cualquier fallo de validación de campos.
var ErrInvalidInput = errors.New("invalid input")

// Errors mapea nombre de campo -> mensaje legible. Un campo tiene a lo sumo un mensaje.
type Errors map[string]string

// Set registra el mensaje solo si el campo todavía no tiene uno (primera regla que falla gana).
func (e Errors) Set(field, msg string) {
	if _, exists := e[field]; exists {
		return
	}
	e[field] = msg
}

func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Err devuelve nil si no hay errores, o un *Error que envuelve ErrInvalidInput.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return &Error{Fields: e}
}

// Error transporta el mapa de campos a través de las capas.
type Error struct {
	Fields Errors
}

func (e *Error) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func (e *Error) Unwrap() error { return ErrInvalidInput }

// FieldsOf extrae el mapa de campos de un error de validación (o nil).
func FieldsOf(err error) Errors {
	var ve *Error
	if errors.As(err, &ve) {
		return ve.Fields
	}
	return nil
}

// Blank replica la semántica de "null o solo espacios".
func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// TooLong cuenta runas, no bytes.
func TooLong(s string, max int) bool {
	return utf8.RuneCountInString(s) > max
}
