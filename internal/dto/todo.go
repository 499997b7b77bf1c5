// Package dto defines the request and query payloads accepted by the HTTP
// surface. Validation rules live in internal/validation; the struct tags here
// only declare them.
package dto

// Status values accepted by the list filter.
const (
	FilterAll       = "all"
	FilterActive    = "active"
	FilterCompleted = "completed"
)

// CreateTodoRequest is the POST /todos body.
type CreateTodoRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Priority    string  `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     *string `json:"dueDate" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	CategoryID  *string `json:"categoryId" validate:"omitempty,uuid4"`
}

// UpdateTodoRequest is the PATCH /todos/{id} body. Description, DueDate and
// CategoryID accept null to clear the stored value; the other fields do not.
type UpdateTodoRequest struct {
	Title       Optional[string] `json:"title"`
	Description Optional[string] `json:"description"`
	Completed   Optional[bool]   `json:"completed"`
	Priority    Optional[string] `json:"priority"`
	DueDate     Optional[string] `json:"dueDate"`
	CategoryID  Optional[string] `json:"categoryId"`
}

// TodoFilter is the parsed GET /todos query string. All criteria are
// optional and combine with logical AND.
type TodoFilter struct {
	Status     string `json:"filter" validate:"omitempty,oneof=all active completed"`
	Priority   string `json:"priority" validate:"omitempty,oneof=low medium high"`
	CategoryID string `json:"categoryId" validate:"omitempty,uuid4"`
	Search     string `json:"search" validate:"-"`
}
