// Package validation provides a shared go-playground/validator instance.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError describes one failed rule.
type FieldError struct {
	Field string
	Tag   string
	Param string
	Value any
}

func (e FieldError) Error() string {
	switch e.Tag {
	case "required":
		return fmt.Sprintf("%s is required", e.Field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", e.Field, e.Param)
	case "max":
		return fmt.Sprintf("%s must be at most %s", e.Field, e.Param)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", e.Field, e.Param)
	case "url", "http_url":
		return fmt.Sprintf("%s must be a valid URL", e.Field)
	default:
		return fmt.Sprintf("%s failed %q validation", e.Field, e.Tag)
	}
}

// Error collects every failed rule of one validation call.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Error()
	}
	return strings.Join(msgs, "; ")
}

// Validator returns the singleton validator.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidateStruct validates s against its `validate` tags.
func ValidateStruct(s any) error {
	return convert(Validator().Struct(s), "")
}

// ValidateVar validates a single value against tag, reporting it as field name.
func ValidateVar(name string, v any, tag string) error {
	return convert(Validator().Var(v, tag), name)
}

func convert(err error, name string) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validation: %w", err)
	}
	out := &Error{Fields: make([]FieldError, len(verrs))}
	for i, fe := range verrs {
		field := fe.Namespace()
		if name != "" {
			field = name
		}
		out.Fields[i] = FieldError{
			Field: field,
			Tag:   fe.Tag(),
			Param: fe.Param(),
			Value: fe.Value(),
		}
	}
	return out
}
