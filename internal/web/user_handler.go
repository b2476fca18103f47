package web

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/reihansyahfitra/hes-vault-client/internal/api"
)

func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	query := api.UserQuery{
		Search:   r.URL.Query().Get("search"),
		Page:     queryInt(r, "page"),
		PageSize: queryInt(r, "page_size"),
	}

	list, err := h.users.List(r.Context(), sess.Token, query)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Users      []userView `json:"users"`
		Pagination PageView   `json:"pagination"`
	}{
		Users:      userViews(list.Users),
		Pagination: pageView(list.Pagination),
	})
}

// GetUser returns a user's profile with their rental history decorated the
// way the admin rental pages show orders.
func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	user, err := h.users.Get(r.Context(), sess.Token, mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	view := userView{User: *user, Admin: user.IsAdmin()}
	writeJSON(w, http.StatusOK, struct {
		userView
		Orders []OrderView `json:"orders"`
	}{
		userView: view,
		Orders:   h.orderViews(user.Orders, sess.User.Team),
	})
}
