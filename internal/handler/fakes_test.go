package handler_test

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/todoflow-labs/todo-service/internal/dto"
	"github.com/todoflow-labs/todo-service/internal/model"
)

// memDB backs the fake stores with the same semantics as the SQL store,
// including the clear-on-delete referential action.
type memDB struct {
	todos      []model.Todo
	categories []model.Category
}

type fakeTodos struct {
	db   *memDB
	fail error
}

func (f *fakeTodos) List(_ context.Context, filter dto.TodoFilter) ([]model.Todo, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	matched := []model.Todo{}
	// Newest first: todos are appended in creation order.
	for i := len(f.db.todos) - 1; i >= 0; i-- {
		todo := f.db.todos[i]
		if filter.Status == dto.FilterActive && todo.Completed {
			continue
		}
		if filter.Status == dto.FilterCompleted && !todo.Completed {
			continue
		}
		if filter.Priority != "" && string(todo.Priority) != filter.Priority {
			continue
		}
		if filter.CategoryID != "" && (todo.CategoryID == nil || *todo.CategoryID != filter.CategoryID) {
			continue
		}
		if filter.Search != "" && !matchesSearch(todo, filter.Search) {
			continue
		}
		matched = append(matched, todo)
	}
	return matched, nil
}

func matchesSearch(todo model.Todo, term string) bool {
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(todo.Title), term) {
		return true
	}
	return todo.Description != nil && strings.Contains(strings.ToLower(*todo.Description), term)
}

func (f *fakeTodos) Get(_ context.Context, id string) (*model.Todo, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	for i := range f.db.todos {
		if f.db.todos[i].ID == id {
			todo := f.db.todos[i]
			return &todo, nil
		}
	}
	return nil, nil
}

func (f *fakeTodos) Create(_ context.Context, req dto.CreateTodoRequest) (*model.Todo, error) {
	if f.fail != nil {
		return nil, f.fail
	}
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
			return nil, err
		}
		todo.DueDate = &due
	}
	f.db.todos = append(f.db.todos, todo)
	return &todo, nil
}

func (f *fakeTodos) Update(_ context.Context, id string, req dto.UpdateTodoRequest) (*model.Todo, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	for i := range f.db.todos {
		todo := &f.db.todos[i]
		if todo.ID != id {
			continue
		}
		if req.Title.Set {
			todo.Title = req.Title.Value
		}
		if req.Description.Set {
			if req.Description.Null {
				todo.Description = nil
			} else {
				v := req.Description.Value
				todo.Description = &v
			}
		}
		if req.Completed.Set {
			todo.Completed = req.Completed.Value
		}
		if req.Priority.Set {
			todo.Priority = model.Priority(req.Priority.Value)
		}
		if req.DueDate.Set {
			if req.DueDate.Null {
				todo.DueDate = nil
			} else {
				due, err := time.Parse(time.RFC3339, req.DueDate.Value)
				if err != nil {
					return nil, err
				}
				todo.DueDate = &due
			}
		}
		if req.CategoryID.Set {
			if req.CategoryID.Null {
				todo.CategoryID = nil
			} else {
				v := req.CategoryID.Value
				todo.CategoryID = &v
			}
		}
		todo.UpdatedAt = time.Now().UTC()
		out := *todo
		return &out, nil
	}
	return nil, nil
}

func (f *fakeTodos) ToggleComplete(_ context.Context, id string) (*model.Todo, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	for i := range f.db.todos {
		todo := &f.db.todos[i]
		if todo.ID != id {
			continue
		}
		todo.Completed = !todo.Completed
		todo.UpdatedAt = time.Now().UTC()
		out := *todo
		return &out, nil
	}
	return nil, nil
}

func (f *fakeTodos) Delete(_ context.Context, id string) (bool, error) {
	if f.fail != nil {
		return false, f.fail
	}
	for i := range f.db.todos {
		if f.db.todos[i].ID == id {
			f.db.todos = append(f.db.todos[:i], f.db.todos[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeCategories struct {
	db   *memDB
	fail error
}

func (f *fakeCategories) List(context.Context) ([]model.Category, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	return append([]model.Category{}, f.db.categories...), nil
}

func (f *fakeCategories) Get(_ context.Context, id string) (*model.Category, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	for i := range f.db.categories {
		if f.db.categories[i].ID == id {
			category := f.db.categories[i]
			return &category, nil
		}
	}
	return nil, nil
}

func (f *fakeCategories) Create(_ context.Context, req dto.CreateCategoryRequest) (*model.Category, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	category := model.Category{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Color:     req.Color,
		CreatedAt: time.Now().UTC(),
	}
	f.db.categories = append(f.db.categories, category)
	return &category, nil
}

func (f *fakeCategories) Update(_ context.Context, id string, req dto.UpdateCategoryRequest) (*model.Category, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	for i := range f.db.categories {
		category := &f.db.categories[i]
		if category.ID != id {
			continue
		}
		if req.Name.Set {
			category.Name = req.Name.Value
		}
		if req.Color.Set {
			category.Color = req.Color.Value
		}
		out := *category
		return &out, nil
	}
	return nil, nil
}

func (f *fakeCategories) Delete(_ context.Context, id string) (bool, error) {
	if f.fail != nil {
		return false, f.fail
	}
	for i := range f.db.categories {
		if f.db.categories[i].ID != id {
			continue
		}
		f.db.categories = append(f.db.categories[:i], f.db.categories[i+1:]...)
		// ON DELETE SET NULL
		for j := range f.db.todos {
			if f.db.todos[j].CategoryID != nil && *f.db.todos[j].CategoryID == id {
				f.db.todos[j].CategoryID = nil
			}
		}
		return true, nil
	}
	return false, nil
}

type fakeStats struct {
	db   *memDB
	fail error
}

func (f *fakeStats) TodoStats(context.Context) (*model.TodoStats, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	stats := model.TodoStats{}
	now := time.Now().UTC()
	for _, todo := range f.db.todos {
		stats.Total++
		if todo.Completed {
			stats.Completed++
		} else {
			stats.Active++
			if todo.DueDate != nil && todo.DueDate.Before(now) {
				stats.Overdue++
			}
		}
		switch todo.Priority {
		case model.PriorityLow:
			stats.ByPriority.Low++
		case model.PriorityMedium:
			stats.ByPriority.Medium++
		case model.PriorityHigh:
			stats.ByPriority.High++
		}
	}
	if stats.Total > 0 {
		stats.CompletionRate = int(float64(stats.Completed)/float64(stats.Total)*100 + 0.5)
	}
	return &stats, nil
}
