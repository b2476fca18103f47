package web

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/reihansyahfitra/hes-vault-client/internal/service"
)

func (h *Handlers) GetCart(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	cart, err := h.carts.Get(r.Context(), sess.Token)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.cartView(cart, queryInt(r, "weeks")))
}

type cartAddRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func (h *Handlers) AddToCart(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	var req cartAddRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "Invalid request body"})
		return
	}
	if req.ProductID == "" {
		h.writeError(w, r, &service.ValidationError{Fields: []service.FieldError{
			{Field: "product_id", Message: "A product is required"},
		}})
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	cart, err := h.carts.Add(r.Context(), sess.Token, req.ProductID, req.Quantity)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.cartView(cart, queryInt(r, "weeks")))
}

type cartUpdateRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handlers) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	var req cartUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "Invalid request body"})
		return
	}
	if req.Quantity < 1 {
		h.writeError(w, r, &service.ValidationError{Fields: []service.FieldError{
			{Field: "quantity", Message: "Quantity must be at least 1"},
		}})
		return
	}

	cart, err := h.carts.UpdateItem(r.Context(), sess.Token, mux.Vars(r)["id"], req.Quantity)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.cartView(cart, queryInt(r, "weeks")))
}

func (h *Handlers) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	cart, err := h.carts.RemoveItem(r.Context(), sess.Token, mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.cartView(cart, queryInt(r, "weeks")))
}

func (h *Handlers) ClearCart(w http.ResponseWriter, r *http.Request) {
	if !requireConfirmation(w, r) {
		return
	}
	sess := sessionFromContext(r.Context())
	cart, err := h.carts.Clear(r.Context(), sess.Token)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.cartView(cart, queryInt(r, "weeks")))
}
