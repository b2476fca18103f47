package web

import (
	"net/http"
)

// Dashboard serves the role-appropriate dashboard. Results are cached per
// user for a short window; a fresh sign-in always sees fresh numbers because
// the session id changes.
func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	dash, err := h.dashboards.ForUser(r.Context(), sess)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dash)
}
