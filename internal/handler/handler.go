// Package handler maps the REST surface onto the store. Handlers return
// errors; a single terminal wrapper logs and classifies every failure, so no
// route carries its own error handling.
package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/todoflow-labs/todo-service/internal/dto"
	"github.com/todoflow-labs/todo-service/internal/httperr"
	"github.com/todoflow-labs/todo-service/internal/logging"
	"github.com/todoflow-labs/todo-service/internal/model"
)

// TodoStore is the todo service surface the handlers depend on.
type TodoStore interface {
	List(ctx context.Context, filter dto.TodoFilter) ([]model.Todo, error)
	Get(ctx context.Context, id string) (*model.Todo, error)
	Create(ctx context.Context, req dto.CreateTodoRequest) (*model.Todo, error)
	Update(ctx context.Context, id string, req dto.UpdateTodoRequest) (*model.Todo, error)
	ToggleComplete(ctx context.Context, id string) (*model.Todo, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// CategoryStore is the category service surface the handlers depend on.
type CategoryStore interface {
	List(ctx context.Context) ([]model.Category, error)
	Get(ctx context.Context, id string) (*model.Category, error)
	Create(ctx context.Context, req dto.CreateCategoryRequest) (*model.Category, error)
	Update(ctx context.Context, id string, req dto.UpdateCategoryRequest) (*model.Category, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// StatsStore is the aggregate read surface.
type StatsStore interface {
	TodoStats(ctx context.Context) (*model.TodoStats, error)
}

// Handler carries the injected stores and the logger used by the terminal
// error wrapper.
type Handler struct {
	todos      TodoStore
	categories CategoryStore
	stats      StatsStore
	logger     *logging.Logger
	production bool
}

func New(todos TodoStore, categories CategoryStore, stats StatsStore, logger *logging.Logger, production bool) *Handler {
	return &Handler{
		todos:      todos,
		categories: categories,
		stats:      stats,
		logger:     logger,
		production: production,
	}
}

// Register mounts all routes on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/health", h.handle(h.health))
	r.Get("/stats", h.handle(h.getStats))

	r.Route("/todos", func(r chi.Router) {
		r.Get("/", h.handle(h.listTodos))
		r.Post("/", h.handle(h.createTodo))
		r.Get("/{id}", h.handle(h.getTodo))
		r.Patch("/{id}", h.handle(h.updateTodo))
		r.Patch("/{id}/toggle", h.handle(h.toggleTodo))
		r.Delete("/{id}", h.handle(h.deleteTodo))
	})

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", h.handle(h.listCategories))
		r.Post("/", h.handle(h.createCategory))
		r.Get("/{id}", h.handle(h.getCategory))
		r.Patch("/{id}", h.handle(h.updateCategory))
		r.Delete("/{id}", h.handle(h.deleteCategory))
	})
}

// handle adapts an error-returning handler, logging and classifying any
// failure exactly once.
func (h *Handler) handle(fn func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}
		h.logger.Error().
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")
		status, body := httperr.Classify(err, h.production)
		writeJSON(w, status, body)
	}
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) error {
	return writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

type dataResponse struct {
	Data any `json:"data"`
}

func writeData(w http.ResponseWriter, status int, v any) error {
	return writeJSON(w, status, dataResponse{Data: v})
}

func writeSuccess(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// writeJSON returns error only for handler signature convenience; once the
// status line is out there is nothing useful to do with an encode failure.
func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
	return nil
}
