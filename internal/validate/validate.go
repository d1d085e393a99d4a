// Package validate turns request and domain validation failures into a single
// error type carrying one message per field, rendered to clients as a JSON
// object keyed by field name.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Error maps field names to human readable messages.
type Error struct {
	Fields map[string]string
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

	return "validation failed: " + strings.Join(parts, "; ")
}

// Add records a message for field, keeping the first one reported.
func (e *Error) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}

	if _, ok := e.Fields[field]; ok {
		return
	}

	e.Fields[field] = msg
}

// Text checks a required string field, optionally bounded to max runes.
func (e *Error) Text(field, value string, max int) {
	switch {
	case strings.TrimSpace(value) == "":
		e.Add(field, "Este campo é obrigatório.")
	case max > 0 && utf8.RuneCountInString(value) > max:
		e.Add(field, fmt.Sprintf("Certifique-se de que este campo não tenha mais de %d caracteres.", max))
	}
}

// Err returns nil when nothing was recorded.
func (e *Error) Err() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}

	return e
}

// Field builds a single-field validation error.
func Field(field, msg string) error {
	e := &Error{}
	e.Add(field, msg)

	return e
}

// As reports whether err carries field errors.
func As(err error) (*Error, bool) {
	var verr *Error
	if errors.As(err, &verr) {
		return verr, true
	}

	return nil, false
}

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())

	val.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		if name == "" {
			return f.Name
		}

		return name
	})

	// Amounts are compared numerically, so gt=0 works on decimal fields.
	val.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}

		return nil
	}, decimal.Decimal{})

	return val
}

// Struct validates s against its `validate` tags.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating request: %w", err)
	}

	out := &Error{}
	for _, fe := range verrs {
		out.Add(fe.Field(), message(fe))
	}

	return out
}

// Var validates a single value against tag and reports failures under field.
func Var(field string, value any, tag string) error {
	err := v.Var(value, tag)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating %s: %w", field, err)
	}

	out := &Error{}
	for _, fe := range verrs {
		out.Add(field, message(fe))
	}

	return out
}

// Merge copies the field messages of err, if it carries any, into e.
func (e *Error) Merge(err error) {
	other, ok := As(err)
	if !ok {
		return
	}

	for field, msg := range other.Fields {
		e.Add(field, msg)
	}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Este campo é obrigatório."
	case "gt":
		return fmt.Sprintf("Certifique-se de que este valor seja maior que %s.", fe.Param())
	case "gte", "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Certifique-se de que este campo tenha no mínimo %s caracteres.", fe.Param())
		}

		return fmt.Sprintf("Certifique-se de que este valor seja maior ou igual a %s.", fe.Param())
	case "lte", "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Certifique-se de que este campo não tenha mais de %s caracteres.", fe.Param())
		}

		return fmt.Sprintf("Certifique-se de que este valor seja menor ou igual a %s.", fe.Param())
	case "oneof":
		return fmt.Sprintf("Escolha um valor válido: %s.", fe.Param())
	case "email":
		return "Insira um endereço de email válido."
	case "url":
		return "Insira uma URL válida."
	}

	return "Valor inválido."
}
