// Package validation checks request payloads before any service call and
// reports every violated field at once. Declarative struct-tag rules cover
// the create and filter inputs; the tri-state PATCH payloads are checked
// field by field.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Detail is one violated field: its path in the payload and a
// human-readable message.
type Detail struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Error carries the ordered list of violations for a rejected payload.
type Error struct {
	Details []Detail
}

func (e *Error) Error() string { return "validation failed" }

// Only 3- and 6-digit hex colors are accepted.
var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report json field names in error paths.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// The built-in hexcolor tag also accepts 4- and 8-digit forms.
	_ = v.RegisterValidation("hexcolor", func(fl validator.FieldLevel) bool {
		return hexColorPattern.MatchString(fl.Field().String())
	})

	return v
}

func check(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	details := make([]Detail, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, Detail{Path: fe.Field(), Message: messageFor(fe)})
	}
	return &Error{Details: details}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Field() {
	case "title":
		if fe.Tag() == "max" {
			return "Title too long"
		}
		return "Title is required"
	case "description":
		return "Description too long"
	case "priority":
		return "Invalid priority"
	case "dueDate":
		return "Invalid datetime"
	case "categoryId":
		return "Invalid category ID"
	case "name":
		if fe.Tag() == "max" {
			return "Name too long"
		}
		return "Name is required"
	case "color":
		return "Invalid hex color format"
	case "filter":
		return "Invalid filter"
	}
	return "Invalid value"
}

// MalformedBody is the failure returned when a request body is not valid JSON.
func MalformedBody() error {
	return &Error{Details: []Detail{{Path: "body", Message: "Invalid JSON format"}}}
}

// ID validates a path identifier before it reaches a service.
func ID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return &Error{Details: []Detail{{Path: "id", Message: "Invalid ID"}}}
	}
	return nil
}
