package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/reihansyahfitra/hes-vault-client/internal/service"
)

// Handlers carries every dependency the HTTP layer needs. Nothing is held
// in package-level state; the application wires one instance at startup.
type Handlers struct {
	sessions   *SessionStore
	sessionSvc service.SessionService
	carts      service.CartService
	rentals    service.RentalService
	checkout   service.CheckoutService
	catalog    service.CatalogService
	users      service.UserService
	dashboards service.DashboardService
	images     ImageResolver
	maxUpload  int64
}

type HandlerDeps struct {
	Sessions   *SessionStore
	SessionSvc service.SessionService
	Carts      service.CartService
	Rentals    service.RentalService
	Checkout   service.CheckoutService
	Catalog    service.CatalogService
	Users      service.UserService
	Dashboards service.DashboardService
	Images     ImageResolver
	MaxUpload  int64
}

func NewHandlers(deps HandlerDeps) *Handlers {
	return &Handlers{
		sessions:   deps.Sessions,
		sessionSvc: deps.SessionSvc,
		carts:      deps.Carts,
		rentals:    deps.Rentals,
		checkout:   deps.Checkout,
		catalog:    deps.Catalog,
		users:      deps.Users,
		dashboards: deps.Dashboards,
		images:     deps.Images,
		maxUpload:  deps.MaxUpload,
	}
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20)).Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func queryInt(r *http.Request, key string) int {
	val, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return val
}

// fileFromRequest extracts a multipart upload, or nil when the field is
// absent. Size checks happen in the services; the backend is the final
// arbiter of acceptance.
func (h *Handlers) fileFromRequest(r *http.Request, field string) *service.FileUpload {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil
	}
	return &service.FileUpload{
		Filename:    header.Filename,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
		Content:     file,
	}
}
