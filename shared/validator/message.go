package validator

import (
	"errors"
	"fmt"

	val "github.com/go-playground/validator/v10"
)

type formatter func(field, param string) string

func fixed(suffix string) formatter {
	return func(field, _ string) string {
		return field + " " + suffix
	}
}

func bounded(relation string) formatter {
	return func(field, param string) string {
		return fmt.Sprintf("%s must be %s %s", field, relation, param)
	}
}

var formatters = map[string]formatter{
	"required": fixed("is required"),
	"notblank": fixed("is required"),
	"email":    fixed("must be a valid email address"),
	"username": fixed("must not contain whitespace"),
	"uuid":     fixed("must be a valid UUID"),
	"gte":      bounded("greater than or equal to"),
	"min":      bounded("greater than or equal to"),
	"lte":      bounded("less than or equal to"),
	"max":      bounded("less than or equal to"),
	"oneof":    bounded("one of"),
}

// message renders the first field error with a known tag.
func message(err error) string {
	var fieldErrors val.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err.Error()
	}

	for _, fieldErr := range fieldErrors {
		format, ok := formatters[fieldErr.Tag()]
		if !ok {
			continue
		}

		field := fieldErr.Field()
		if field == "" {
			field = "value"
		}

		return format(field, fieldErr.Param())
	}

	return fieldErrors.Error()
}
