package validation

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/todoflow-labs/todo-service/internal/dto"
	"github.com/todoflow-labs/todo-service/internal/model"
)

// CreateTodo normalizes and validates a POST /todos payload. The title is
// trimmed and the priority defaulted before the rules run, so an accepted
// payload is ready to persist as-is.
func CreateTodo(req *dto.CreateTodoRequest) error {
	req.Title = strings.TrimSpace(req.Title)
	if req.Priority == "" {
		req.Priority = string(model.PriorityMedium)
	}
	return check(req)
}

// UpdateTodo validates a PATCH /todos/{id} payload. Each provided field is
// checked independently with the same rules as create; absent fields are
// ignored and null is only legal on the nullable fields.
func UpdateTodo(req *dto.UpdateTodoRequest) error {
	var details []Detail

	if req.Title.Set {
		if !req.Title.Null {
			req.Title.Value = strings.TrimSpace(req.Title.Value)
		}
		switch {
		case req.Title.Null || req.Title.Value == "":
			details = append(details, Detail{Path: "title", Message: "Title is required"})
		case utf8.RuneCountInString(req.Title.Value) > 200:
			details = append(details, Detail{Path: "title", Message: "Title too long"})
		}
	}
	if req.Description.Set && !req.Description.Null && utf8.RuneCountInString(req.Description.Value) > 1000 {
		details = append(details, Detail{Path: "description", Message: "Description too long"})
	}
	if req.Completed.Set && req.Completed.Null {
		details = append(details, Detail{Path: "completed", Message: "Invalid value"})
	}
	if req.Priority.Set && (req.Priority.Null || !isPriority(req.Priority.Value)) {
		details = append(details, Detail{Path: "priority", Message: "Invalid priority"})
	}
	if req.DueDate.Set && !req.DueDate.Null {
		if _, err := time.Parse(time.RFC3339, req.DueDate.Value); err != nil {
			details = append(details, Detail{Path: "dueDate", Message: "Invalid datetime"})
		}
	}
	if req.CategoryID.Set && !req.CategoryID.Null {
		if _, err := uuid.Parse(req.CategoryID.Value); err != nil {
			details = append(details, Detail{Path: "categoryId", Message: "Invalid category ID"})
		}
	}

	if len(details) > 0 {
		return &Error{Details: details}
	}
	return nil
}

// Filter normalizes and validates the GET /todos query string.
func Filter(f *dto.TodoFilter) error {
	if f.Status == "" {
		f.Status = dto.FilterAll
	}
	return check(f)
}

func isPriority(s string) bool {
	switch model.Priority(s) {
	case model.PriorityLow, model.PriorityMedium, model.PriorityHigh:
		return true
	}
	return false
}
