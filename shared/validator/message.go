package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":   "{field} is required",
		"gte":        "{field} must be greater than or equal to {param}",
		"lte":        "{field} must be less than or equal to {param}",
		"oneof":      "{field} must be one of {param}",
		"max":        "{field} must be less than or equal to {param}",
		"min":        "{field} must be greater than or equal to {param}",
		"email":      "{field} must be a valid email address",
		"e164":       "{field} must be a phone number in E.164 format",
		tagTimeOfDay: "{field} must be a time of day in HH:MM format",
		tagDate:      "{field} must be a date in YYYY-MM-DD format",
	}
)

func message(err error) string {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, valErr := range valErrors {
		tmpl := messages[valErr.Tag()]
		if tmpl == "" {
			continue
		}

		tmpl = strings.ReplaceAll(tmpl, "{field}", valErr.Field())

		return strings.ReplaceAll(tmpl, "{param}", valErr.Param())
	}

	return valErrors.Error()
}
