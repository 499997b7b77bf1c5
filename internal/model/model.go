// Package model holds the persistence schema types shared by the store
// and the HTTP layer.
package model

import "time"

// Priority is the urgency level of a todo.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DefaultCategoryColor is applied when a category is created without a color.
const DefaultCategoryColor = "#6366f1"

// Category is a named, colored tag used to group todos.
type Category struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Color     string    `db:"color" json:"color"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// Todo is a single task record. CategoryID is nil for uncategorized todos;
// the store clears it when the referenced category is deleted.
type Todo struct {
	ID          string     `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Description *string    `db:"description" json:"description,omitempty"`
	Completed   bool       `db:"completed" json:"completed"`
	Priority    Priority   `db:"priority" json:"priority"`
	DueDate     *time.Time `db:"due_date" json:"dueDate,omitempty"`
	CategoryID  *string    `db:"category_id" json:"categoryId,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updatedAt"`
}

// PriorityCounts is the per-priority breakdown inside TodoStats.
type PriorityCounts struct {
	Low    int `db:"low" json:"low"`
	Medium int `db:"medium" json:"medium"`
	High   int `db:"high" json:"high"`
}

// TodoStats is the aggregate view computed over the full todo set.
// CompletionRate is completed/total as a rounded percentage, 0 when empty.
type TodoStats struct {
	Total          int            `json:"total"`
	Completed      int            `json:"completed"`
	Active         int            `json:"active"`
	Overdue        int            `json:"overdue"`
	ByPriority     PriorityCounts `json:"byPriority"`
	CompletionRate int            `json:"completionRate"`
}
