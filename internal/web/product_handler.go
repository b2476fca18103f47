package web

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/reihansyahfitra/hes-vault-client/internal/api"
	"github.com/reihansyahfitra/hes-vault-client/internal/service"
)

func (h *Handlers) ListProducts(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	query := api.ProductQuery{
		Search:   r.URL.Query().Get("search"),
		Category: r.URL.Query().Get("category"),
		Page:     queryInt(r, "page"),
		PageSize: queryInt(r, "page_size"),
	}

	list, err := h.catalog.ListProducts(r.Context(), sess.Token, query)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Products   []ProductView `json:"products"`
		Pagination PageView      `json:"pagination"`
	}{
		Products:   h.productViews(list.Products),
		Pagination: pageView(list.Pagination),
	})
}

func (h *Handlers) GetProduct(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	product, err := h.catalog.GetProduct(r.Context(), sess.Token, mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.productView(product))
}

func validateProductInput(input api.ProductInput) []service.FieldError {
	var fields []service.FieldError
	if strings.TrimSpace(input.Name) == "" {
		fields = append(fields, service.FieldError{Field: "name", Message: "Product name is required"})
	}
	if input.CategoryID == "" {
		fields = append(fields, service.FieldError{Field: "category_id", Message: "Category is required"})
	}
	if input.Price < 0 {
		fields = append(fields, service.FieldError{Field: "price", Message: "Price cannot be negative"})
	}
	if input.Quantity < 0 {
		fields = append(fields, service.FieldError{Field: "quantity", Message: "Quantity cannot be negative"})
	}
	return fields
}

func (h *Handlers) CreateProduct(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	var input api.ProductInput
	if err := decodeJSON(r, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "Invalid request body"})
		return
	}
	if fields := validateProductInput(input); len(fields) > 0 {
		h.writeError(w, r, &service.ValidationError{Fields: fields})
		return
	}

	product, err := h.catalog.CreateProduct(r.Context(), sess.Token, input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, h.productView(product))
}

func (h *Handlers) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	var input api.ProductInput
	if err := decodeJSON(r, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "Invalid request body"})
		return
	}
	if fields := validateProductInput(input); len(fields) > 0 {
		h.writeError(w, r, &service.ValidationError{Fields: fields})
		return
	}

	product, err := h.catalog.UpdateProduct(r.Context(), sess.Token, mux.Vars(r)["id"], input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.productView(product))
}

func (h *Handlers) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if !requireConfirmation(w, r) {
		return
	}
	sess := sessionFromContext(r.Context())
	if err := h.catalog.DeleteProduct(r.Context(), sess.Token, mux.Vars(r)["id"]); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Product deleted"})
}

func (h *Handlers) UploadProductImage(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	file := h.fileFromRequest(r, "image")
	if file == nil {
		h.writeError(w, r, &service.ValidationError{Fields: []service.FieldError{
			{Field: "image", Message: "An image file is required"},
		}})
		return
	}
	if file.Size > h.maxUpload {
		h.writeError(w, r, &service.ValidationError{Fields: []service.FieldError{
			{Field: "image", Message: "Image must be 5 MB or smaller"},
		}})
		return
	}

	path, err := h.catalog.UploadProductImage(r.Context(), sess.Token, mux.Vars(r)["id"], *file)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"path": path,
		"url":  h.images.ResolveImageURL(path),
	})
}
