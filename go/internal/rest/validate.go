package rest

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	return v
}

// Validate checks a request struct's validate tags and returns one message
// per failing field, keyed by the field's JSON-ish name. A nil map means
// the struct is valid.
func Validate(s any) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"request": "invalid request"}
	}

	fields := make(map[string]string, len(verrs))
	for _, ve := range verrs {
		fields[fieldName(ve)] = messageFor(ve)
	}
	return fields
}

func fieldName(ve validator.FieldError) string {
	return toSnake(ve.Field())
}

func messageFor(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "value is below the minimum"
	case "max":
		return "value exceeds the maximum"
	case "gte":
		return "value is too small"
	case "nefield":
		return "must differ from " + toSnake(ve.Param())
	default:
		return "invalid value"
	}
}

func toSnake(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && !(runes[i-1] >= 'A' && runes[i-1] <= 'Z') {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
