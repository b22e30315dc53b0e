package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// newValidator builds a validator whose reported field names come from the
// json tags, so the errors map keys match the request payload keys.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// fieldMessages maps "field.tag" onto the message reported to the caller.
// Anything not listed falls through to a generated message.
var fieldMessages = map[string]string{
	"email.required":    "Email is required.",
	"email.email":       "Email is not valid.",
	"password.required": "Password is required.",
	"password.min":      "Password must be at least 8 characters.",
	"name.required":     "Name is required.",
	"name.min":          "Name must be at least 3 characters.",
	"name.max":          "Name must be at most 50 characters.",
	"role.oneof":        "Role must be administrator, manager, or user.",
	"price.required":    "Price is required.",
	"price.gte":         "Price must be at least 0.",
}

// translateValidationErrors converts validator failures into the
// field→messages map carried by the 422 envelope.
func translateValidationErrors(err error) *ValidationError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Not a field-level failure; surface the fallback message.
		return &ValidationError{}
	}

	fields := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		fields[field] = append(fields[field], fieldMessage(field, fe))
	}

	return &ValidationError{Fields: fields}
}

// fieldMessage resolves the message for a single failed constraint.
func fieldMessage(field string, fe validator.FieldError) string {
	if msg, ok := fieldMessages[field+"."+fe.Tag()]; ok {
		return msg
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", field)
	case "min":
		return fmt.Sprintf("The %s field must be at least %s characters.", field, fe.Param())
	case "max":
		return fmt.Sprintf("The %s field must be at most %s characters.", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("The %s field must be one of: %s.", field, fe.Param())
	case "gte":
		return fmt.Sprintf("The %s field must be at least %s.", field, fe.Param())
	default:
		return fmt.Sprintf("The %s field is invalid.", field)
	}
}
