package web

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires every route. Three tiers: public (sign in, health,
// metrics), authenticated, and administrator-only. Role gating here is a
// convenience; the backend independently enforces authorization on every
// call.
func NewRouter(h *Handlers) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestLogger, Metrics)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	r.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)
	r.HandleFunc("/auth/register", h.Register).Methods(http.MethodPost)

	authed := r.NewRoute().Subrouter()
	authed.Use(h.RequireSession)

	// The admin subrouter is created before the wildcard routes below so
	// that /rentals/all resolves here rather than as a rental id.
	admin := authed.NewRoute().Subrouter()
	admin.Use(h.RequireAdmin)

	admin.HandleFunc("/rentals/all", h.ListAllRentals).Methods(http.MethodGet)

	admin.HandleFunc("/products", h.CreateProduct).Methods(http.MethodPost)
	admin.HandleFunc("/products/{id}", h.UpdateProduct).Methods(http.MethodPut)
	admin.HandleFunc("/products/{id}", h.DeleteProduct).Methods(http.MethodDelete)
	admin.HandleFunc("/products/{id}/image", h.UploadProductImage).Methods(http.MethodPost)

	admin.HandleFunc("/categories", h.CreateCategory).Methods(http.MethodPost)
	admin.HandleFunc("/categories/{id}", h.UpdateCategory).Methods(http.MethodPut)
	admin.HandleFunc("/categories/{id}", h.DeleteCategory).Methods(http.MethodDelete)

	admin.HandleFunc("/users", h.ListUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", h.GetUser).Methods(http.MethodGet)

	authed.HandleFunc("/auth/logout", h.Logout).Methods(http.MethodPost)
	authed.HandleFunc("/auth/me", h.Me).Methods(http.MethodGet)

	authed.HandleFunc("/dashboard", h.Dashboard).Methods(http.MethodGet)

	authed.HandleFunc("/products", h.ListProducts).Methods(http.MethodGet)
	authed.HandleFunc("/products/{id}", h.GetProduct).Methods(http.MethodGet)
	authed.HandleFunc("/categories", h.ListCategories).Methods(http.MethodGet)

	authed.HandleFunc("/cart", h.GetCart).Methods(http.MethodGet)
	authed.HandleFunc("/cart", h.ClearCart).Methods(http.MethodDelete)
	authed.HandleFunc("/cart/items", h.AddToCart).Methods(http.MethodPost)
	authed.HandleFunc("/cart/items/{id}", h.UpdateCartItem).Methods(http.MethodPut)
	authed.HandleFunc("/cart/items/{id}", h.RemoveCartItem).Methods(http.MethodDelete)

	authed.HandleFunc("/rentals", h.ListMyRentals).Methods(http.MethodGet)
	authed.HandleFunc("/rentals", h.SubmitCheckout).Methods(http.MethodPost)
	authed.HandleFunc("/rentals/checkout", h.CheckoutForm).Methods(http.MethodGet)
	authed.HandleFunc("/rentals/{id}", h.GetRental).Methods(http.MethodGet)
	authed.HandleFunc("/rentals/{id}/actions/{action}", h.PerformRentalAction).Methods(http.MethodPost)
	authed.HandleFunc("/rentals/{id}/documents/{docType}", h.UploadRentalDocument).Methods(http.MethodPost)

	return r
}
