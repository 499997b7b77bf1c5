package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/todoflow-labs/todo-service/internal/dto"
	"github.com/todoflow-labs/todo-service/internal/model"
)

// CreateCategory normalizes and validates a POST /categories payload,
// applying the default color when none is given.
func CreateCategory(req *dto.CreateCategoryRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	if req.Color == "" {
		req.Color = model.DefaultCategoryColor
	}
	return check(req)
}

// UpdateCategory validates a PATCH /categories/{id} payload. Category fields
// are not nullable, so null fails the same rule as an invalid value.
func UpdateCategory(req *dto.UpdateCategoryRequest) error {
	var details []Detail

	if req.Name.Set {
		if !req.Name.Null {
			req.Name.Value = strings.TrimSpace(req.Name.Value)
		}
		switch {
		case req.Name.Null || req.Name.Value == "":
			details = append(details, Detail{Path: "name", Message: "Name is required"})
		case utf8.RuneCountInString(req.Name.Value) > 50:
			details = append(details, Detail{Path: "name", Message: "Name too long"})
		}
	}
	if req.Color.Set && (req.Color.Null || !hexColorPattern.MatchString(req.Color.Value)) {
		details = append(details, Detail{Path: "color", Message: "Invalid hex color format"})
	}

	if len(details) > 0 {
		return &Error{Details: details}
	}
	return nil
}
