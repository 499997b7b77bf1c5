package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/todoflow-labs/todo-service/internal/dto"
	"github.com/todoflow-labs/todo-service/internal/model"
)

var todoColumns = []string{
	"id", "title", "description", "completed", "priority",
	"due_date", "category_id", "created_at", "updated_at",
}

const todoReturning = "RETURNING id, title, description, completed, priority, due_date, category_id, created_at, updated_at"

// TodoStore is the CRUD service for todos.
type TodoStore struct {
	db *sqlx.DB
}

// List returns todos matching the filter, newest first. All supplied
// criteria combine with AND; the search term matches title or description
// case-insensitively.
func (s *TodoStore) List(ctx context.Context, filter dto.TodoFilter) ([]model.Todo, error) {
	q := psql.Select(todoColumns...).
		From("todos").
		OrderBy("created_at DESC")

	conds := squirrel.And{}
	switch filter.Status {
	case dto.FilterActive:
		conds = append(conds, squirrel.Eq{"completed": false})
	case dto.FilterCompleted:
		conds = append(conds, squirrel.Eq{"completed": true})
	}
	if filter.Priority != "" {
		conds = append(conds, squirrel.Eq{"priority": filter.Priority})
	}
	if filter.CategoryID != "" {
		conds = append(conds, squirrel.Eq{"category_id": filter.CategoryID})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		conds = append(conds, squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"description": pattern},
		})
	}
	if len(conds) > 0 {
		q = q.Where(conds)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}
	todos := []model.Todo{}
	if err := s.db.SelectContext(ctx, &todos, query, args...); err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return todos, nil
}

// Get returns the todo or nil when the id does not exist.
func (s *TodoStore) Get(ctx context.Context, id string) (*model.Todo, error) {
	query, args, err := psql.Select(todoColumns...).
		From("todos").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}
	var todo model.Todo
	if err := s.db.GetContext(ctx, &todo, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get todo: %w", err)
	}
	return &todo, nil
}

// Create persists a new todo from a validated request. The id and both
// timestamps are generated here; completed always starts false.
func (s *TodoStore) Create(ctx context.Context, req dto.CreateTodoRequest) (*model.Todo, error) {
	now := time.Now().UTC()
	todo := model.Todo{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Completed:   false,
		Priority:    model.Priority(req.Priority),
		CategoryID:  req.CategoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.DueDate != nil {
		due, err := time.Parse(time.RFC3339, *req.DueDate)
		if err != nil {
			return nil, fmt.Errorf("parse due date: %w", err)
		}
		due = due.UTC()
		todo.DueDate = &due
	}

	query, args, err := psql.Insert("todos").
		Columns(todoColumns...).
		Values(todo.ID, todo.Title, todo.Description, todo.Completed, todo.Priority,
			todo.DueDate, todo.CategoryID, todo.CreatedAt, todo.UpdatedAt).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert query: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}
	return &todo, nil
}

// Update applies the provided fields and refreshes updated_at. Returns nil
// when the id does not exist. Null due date, category or description clear
// the stored value.
func (s *TodoStore) Update(ctx context.Context, id string, req dto.UpdateTodoRequest) (*model.Todo, error) {
	q := psql.Update("todos").
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id}).
		Suffix(todoReturning)

	if req.Title.Set {
		q = q.Set("title", req.Title.Value)
	}
	if req.Description.Set {
		q = q.Set("description", nullable(req.Description))
	}
	if req.Completed.Set {
		q = q.Set("completed", req.Completed.Value)
	}
	if req.Priority.Set {
		q = q.Set("priority", req.Priority.Value)
	}
	if req.DueDate.Set {
		if req.DueDate.Null {
			q = q.Set("due_date", nil)
		} else {
			due, err := time.Parse(time.RFC3339, req.DueDate.Value)
			if err != nil {
				return nil, fmt.Errorf("parse due date: %w", err)
			}
			q = q.Set("due_date", due.UTC())
		}
	}
	if req.CategoryID.Set {
		q = q.Set("category_id", nullable(req.CategoryID))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}
	var todo model.Todo
	if err := s.db.GetContext(ctx, &todo, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update todo: %w", err)
	}
	return &todo, nil
}

// ToggleComplete flips the completion flag in a single statement, so
// applying it twice always restores the original value.
func (s *TodoStore) ToggleComplete(ctx context.Context, id string) (*model.Todo, error) {
	query, args, err := psql.Update("todos").
		Set("completed", squirrel.Expr("NOT completed")).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id}).
		Suffix(todoReturning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build toggle query: %w", err)
	}
	var todo model.Todo
	if err := s.db.GetContext(ctx, &todo, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("toggle todo: %w", err)
	}
	return &todo, nil
}

// Delete removes the todo and reports whether it existed.
func (s *TodoStore) Delete(ctx context.Context, id string) (bool, error) {
	query, args, err := psql.Delete("todos").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build delete query: %w", err)
	}
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete todo: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete todo: %w", err)
	}
	return n > 0, nil
}

// nullable maps an optional field to its SQL value, NULL when cleared.
func nullable[T any](o dto.Optional[T]) any {
	if o.Null {
		return nil
	}
	return o.Value
}
