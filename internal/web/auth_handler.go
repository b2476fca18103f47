package web

import (
	"net/http"
	"strings"

	"github.com/reihansyahfitra/hes-vault-client/internal/logger"
	"github.com/reihansyahfitra/hes-vault-client/internal/service"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	User  any    `json:"user"`
	Admin bool   `json:"admin"`
	Until string `json:"expires_at"`
}

func sessionBody(sess *service.Session) sessionResponse {
	return sessionResponse{
		User:  sess.User,
		Admin: sess.User.IsAdmin(),
		Until: sess.ExpiresAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "Invalid request body"})
		return
	}
	var fields []service.FieldError
	if strings.TrimSpace(req.Email) == "" {
		fields = append(fields, service.FieldError{Field: "email", Message: "Email is required"})
	}
	if req.Password == "" {
		fields = append(fields, service.FieldError{Field: "password", Message: "Password is required"})
	}
	if len(fields) > 0 {
		h.writeError(w, r, &service.ValidationError{Fields: fields})
		return
	}

	sess, err := h.sessionSvc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.sessions.Put(w, sess)
	writeJSON(w, http.StatusOK, sessionBody(sess))
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "Invalid request body"})
		return
	}
	var fields []service.FieldError
	if strings.TrimSpace(req.Name) == "" {
		fields = append(fields, service.FieldError{Field: "name", Message: "Name is required"})
	}
	if strings.TrimSpace(req.Email) == "" {
		fields = append(fields, service.FieldError{Field: "email", Message: "Email is required"})
	}
	if req.Password == "" {
		fields = append(fields, service.FieldError{Field: "password", Message: "Password is required"})
	}
	if len(fields) > 0 {
		h.writeError(w, r, &service.ValidationError{Fields: fields})
		return
	}

	sess, err := h.sessionSvc.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.sessions.Put(w, sess)
	writeJSON(w, http.StatusCreated, sessionBody(sess))
}

// Logout revokes the token server-side, then drops the local session no
// matter what the backend said.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	if err := h.sessionSvc.Logout(r.Context(), sess); err != nil {
		logger.Warn("Backend logout failed", "error", err)
	}
	h.sessions.Destroy(w, r)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Signed out"})
}

// Me re-reads the profile so the view always reflects the authoritative
// role and account details.
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	if err := h.sessionSvc.Refresh(r.Context(), sess); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionBody(sess))
}
