package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"realty/shared/failure"
	"time"

	val "github.com/go-playground/validator/v10"
)

const (
	tagTimeOfDay = "timeofday"
	tagDate      = "date"
)

var validate *val.Validate

// layoutValidation accepts strings that parse with the given time layout.
func layoutValidation(layout string) val.Func {
	return func(field val.FieldLevel) bool {
		str, ok := field.Field().Interface().(string)
		if !ok {
			return false
		}

		_, err := time.Parse(layout, str)

		return err == nil
	}
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	if err := validate.RegisterValidation(tagTimeOfDay, layoutValidation("15:04")); err != nil {
		panic(err)
	}

	if err := validate.RegisterValidation(tagDate, layoutValidation("2006-01-02")); err != nil {
		panic(err)
	}
}

// Validate decodes JSON from r into data and validates the result.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}
