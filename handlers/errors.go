package handlers

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// fieldErrors converts a binding failure into the {field: [messages]}
// payload the API returns for invalid input.
func fieldErrors(err error) map[string][]string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string][]string, len(verrs))
		for _, fe := range verrs {
			field := strings.ToLower(fe.Field())
			out[field] = append(out[field], fieldMessage(fe))
		}
		return out
	}
	return map[string][]string{"non_field_errors": {err.Error()}}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "gte":
		return "Ensure this value is greater than or equal to " + fe.Param() + "."
	case "datetime":
		return "Date has wrong format. Use YYYY-MM-DD."
	default:
		return "This field is invalid."
	}
}
