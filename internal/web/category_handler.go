package web

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/reihansyahfitra/hes-vault-client/internal/api"
	"github.com/reihansyahfitra/hes-vault-client/internal/service"
)

func (h *Handlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	categories, err := h.catalog.ListCategories(r.Context(), sess.Token)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Categories []CategoryView `json:"categories"`
	}{Categories: categoryViews(categories)})
}

func categoryInputFromRequest(r *http.Request) (api.CategoryInput, error) {
	var input api.CategoryInput
	if err := decodeJSON(r, &input); err != nil {
		return input, err
	}
	input.Name = strings.TrimSpace(input.Name)
	return input, nil
}

func (h *Handlers) CreateCategory(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	input, err := categoryInputFromRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "Invalid request body"})
		return
	}
	if input.Name == "" {
		h.writeError(w, r, &service.ValidationError{Fields: []service.FieldError{
			{Field: "name", Message: "Category name is required"},
		}})
		return
	}

	category, err := h.catalog.CreateCategory(r.Context(), sess.Token, input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, CategoryView{Category: *category, Deletable: category.Deletable()})
}

func (h *Handlers) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	input, err := categoryInputFromRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "Invalid request body"})
		return
	}
	if input.Name == "" {
		h.writeError(w, r, &service.ValidationError{Fields: []service.FieldError{
			{Field: "name", Message: "Category name is required"},
		}})
		return
	}

	category, err := h.catalog.UpdateCategory(r.Context(), sess.Token, mux.Vars(r)["id"], input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, CategoryView{Category: *category, Deletable: category.Deletable()})
}

// DeleteCategory refuses locally when the category still has products; the
// backend enforces the same rule for anyone bypassing this client.
func (h *Handlers) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if !requireConfirmation(w, r) {
		return
	}
	sess := sessionFromContext(r.Context())
	id := mux.Vars(r)["id"]

	categories, err := h.catalog.ListCategories(r.Context(), sess.Token)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	for _, c := range categories {
		if c.ID == id && !c.Deletable() {
			writeJSON(w, http.StatusConflict, errorBody{Message: "Cannot delete a category that still has products"})
			return
		}
	}

	if err := h.catalog.DeleteCategory(r.Context(), sess.Token, id); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Category deleted"})
}
