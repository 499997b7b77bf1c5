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

var categoryColumns = []string{"id", "name", "color", "created_at"}

const categoryReturning = "RETURNING id, name, color, created_at"

// CategoryStore is the CRUD service for categories.
type CategoryStore struct {
	db *sqlx.DB
}

// List returns all categories ordered by name.
func (s *CategoryStore) List(ctx context.Context) ([]model.Category, error) {
	query, args, err := psql.Select(categoryColumns...).
		From("categories").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}
	categories := []model.Category{}
	if err := s.db.SelectContext(ctx, &categories, query, args...); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// Get returns the category or nil when the id does not exist.
func (s *CategoryStore) Get(ctx context.Context, id string) (*model.Category, error) {
	query, args, err := psql.Select(categoryColumns...).
		From("categories").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}
	var category model.Category
	if err := s.db.GetContext(ctx, &category, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &category, nil
}

// Create persists a new category from a validated request.
func (s *CategoryStore) Create(ctx context.Context, req dto.CreateCategoryRequest) (*model.Category, error) {
	category := model.Category{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Color:     req.Color,
		CreatedAt: time.Now().UTC(),
	}
	query, args, err := psql.Insert("categories").
		Columns(categoryColumns...).
		Values(category.ID, category.Name, category.Color, category.CreatedAt).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert query: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return &category, nil
}

// Update applies the provided fields. Returns nil when the id does not exist.
// An empty payload is a no-op read.
func (s *CategoryStore) Update(ctx context.Context, id string, req dto.UpdateCategoryRequest) (*model.Category, error) {
	if !req.Name.Set && !req.Color.Set {
		return s.Get(ctx, id)
	}

	q := psql.Update("categories").
		Where(squirrel.Eq{"id": id}).
		Suffix(categoryReturning)

	if req.Name.Set {
		q = q.Set("name", req.Name.Value)
	}
	if req.Color.Set {
		q = q.Set("color", req.Color.Value)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}
	var category model.Category
	if err := s.db.GetContext(ctx, &category, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update category: %w", err)
	}
	return &category, nil
}

// Delete removes the category and reports whether it existed. Todos that
// referenced it keep existing with category_id cleared by the FK action.
func (s *CategoryStore) Delete(ctx context.Context, id string) (bool, error) {
	query, args, err := psql.Delete("categories").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build delete query: %w", err)
	}
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete category: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete category: %w", err)
	}
	return n > 0, nil
}
