package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	customizererrors "github.com/alexisbeaulieu97/customizer/pkg/errors"
)

// convertValidationError normalizes validator errors into config validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return customizererrors.NewValidationError(field, msg, err)
	}

	return customizererrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName turns Config.Store.Backend into store.backend.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, toSnake(part))
	}
	return strings.Join(lowered, ".")
}

func toSnake(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
