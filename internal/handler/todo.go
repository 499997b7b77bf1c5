package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/todoflow-labs/todo-service/internal/dto"
	"github.com/todoflow-labs/todo-service/internal/httperr"
	"github.com/todoflow-labs/todo-service/internal/validation"
)

func (h *Handler) listTodos(w http.ResponseWriter, r *http.Request) error {
	query := r.URL.Query()
	filter := dto.TodoFilter{
		Status:     query.Get("filter"),
		Priority:   query.Get("priority"),
		CategoryID: query.Get("categoryId"),
		Search:     query.Get("search"),
	}
	if err := validation.Filter(&filter); err != nil {
		return err
	}
	todos, err := h.todos.List(r.Context(), filter)
	if err != nil {
		return err
	}
	return writeData(w, http.StatusOK, todos)
}

func (h *Handler) getTodo(w http.ResponseWriter, r *http.Request) error {
	id := chi.URLParam(r, "id")
	if err := validation.ID(id); err != nil {
		return err
	}
	todo, err := h.todos.Get(r.Context(), id)
	if err != nil {
		return err
	}
	if todo == nil {
		return httperr.New(http.StatusNotFound, "Todo not found")
	}
	return writeData(w, http.StatusOK, todo)
}

func (h *Handler) createTodo(w http.ResponseWriter, r *http.Request) error {
	var req dto.CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return validation.MalformedBody()
	}
	if err := validation.CreateTodo(&req); err != nil {
		return err
	}
	todo, err := h.todos.Create(r.Context(), req)
	if err != nil {
		return err
	}
	return writeData(w, http.StatusCreated, todo)
}

func (h *Handler) updateTodo(w http.ResponseWriter, r *http.Request) error {
	id := chi.URLParam(r, "id")
	if err := validation.ID(id); err != nil {
		return err
	}
	var req dto.UpdateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return validation.MalformedBody()
	}
	if err := validation.UpdateTodo(&req); err != nil {
		return err
	}
	todo, err := h.todos.Update(r.Context(), id, req)
	if err != nil {
		return err
	}
	if todo == nil {
		return httperr.New(http.StatusNotFound, "Todo not found")
	}
	return writeData(w, http.StatusOK, todo)
}

func (h *Handler) toggleTodo(w http.ResponseWriter, r *http.Request) error {
	id := chi.URLParam(r, "id")
	if err := validation.ID(id); err != nil {
		return err
	}
	todo, err := h.todos.ToggleComplete(r.Context(), id)
	if err != nil {
		return err
	}
	if todo == nil {
		return httperr.New(http.StatusNotFound, "Todo not found")
	}
	return writeData(w, http.StatusOK, todo)
}

func (h *Handler) deleteTodo(w http.ResponseWriter, r *http.Request) error {
	id := chi.URLParam(r, "id")
	if err := validation.ID(id); err != nil {
		return err
	}
	deleted, err := h.todos.Delete(r.Context(), id)
	if err != nil {
		return err
	}
	if !deleted {
		return httperr.New(http.StatusNotFound, "Todo not found")
	}
	return writeSuccess(w)
}
