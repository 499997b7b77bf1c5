package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/todoflow-labs/todo-service/internal/dto"
	"github.com/todoflow-labs/todo-service/internal/httperr"
	"github.com/todoflow-labs/todo-service/internal/validation"
)

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) error {
	categories, err := h.categories.List(r.Context())
	if err != nil {
		return err
	}
	return writeData(w, http.StatusOK, categories)
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) error {
	id := chi.URLParam(r, "id")
	if err := validation.ID(id); err != nil {
		return err
	}
	category, err := h.categories.Get(r.Context(), id)
	if err != nil {
		return err
	}
	if category == nil {
		return httperr.New(http.StatusNotFound, "Category not found")
	}
	return writeData(w, http.StatusOK, category)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) error {
	var req dto.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return validation.MalformedBody()
	}
	if err := validation.CreateCategory(&req); err != nil {
		return err
	}
	category, err := h.categories.Create(r.Context(), req)
	if err != nil {
		return err
	}
	return writeData(w, http.StatusCreated, category)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) error {
	id := chi.URLParam(r, "id")
	if err := validation.ID(id); err != nil {
		return err
	}
	var req dto.UpdateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return validation.MalformedBody()
	}
	if err := validation.UpdateCategory(&req); err != nil {
		return err
	}
	category, err := h.categories.Update(r.Context(), id, req)
	if err != nil {
		return err
	}
	if category == nil {
		return httperr.New(http.StatusNotFound, "Category not found")
	}
	return writeData(w, http.StatusOK, category)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) error {
	id := chi.URLParam(r, "id")
	if err := validation.ID(id); err != nil {
		return err
	}
	deleted, err := h.categories.Delete(r.Context(), id)
	if err != nil {
		return err
	}
	if !deleted {
		return httperr.New(http.StatusNotFound, "Category not found")
	}
	return writeSuccess(w)
}
