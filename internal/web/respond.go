package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/reihansyahfitra/hes-vault-client/internal/api"
	"github.com/reihansyahfitra/hes-vault-client/internal/logger"
	"github.com/reihansyahfitra/hes-vault-client/internal/metrics"
	"github.com/reihansyahfitra/hes-vault-client/internal/service"
)

type errorBody struct {
	Message string               `json:"message"`
	Fields  []service.FieldError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// writeError maps the error taxonomy onto HTTP responses: validation
// failures carry field detail, backend messages pass through verbatim, and
// transport failures become a generic "could not connect".
func (h *Handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if ve, ok := service.AsValidationError(err); ok {
		metrics.BackendErrorsTotal.WithLabelValues("validation").Inc()
		writeJSON(w, http.StatusBadRequest, errorBody{Message: ve.Error(), Fields: ve.Fields})
		return
	}

	if api.IsUnauthorized(err) {
		// The backend rejected the token: the session is dead.
		metrics.BackendErrorsTotal.WithLabelValues("unauthorized").Inc()
		h.sessions.Destroy(w, r)
		writeJSON(w, http.StatusUnauthorized, errorBody{Message: "Your session has expired, please sign in again"})
		return
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		metrics.BackendErrorsTotal.WithLabelValues("api").Inc()
		writeJSON(w, apiErr.StatusCode, errorBody{Message: apiErr.Message})
		return
	}

	if errors.Is(err, api.ErrUnreachable) {
		metrics.BackendErrorsTotal.WithLabelValues("unreachable").Inc()
		writeJSON(w, http.StatusBadGateway, errorBody{Message: "Could not connect to HES Vault, please try again"})
		return
	}

	if errors.Is(err, api.ErrFileTooLarge) {
		metrics.BackendErrorsTotal.WithLabelValues("validation").Inc()
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "The selected file exceeds the upload size limit"})
		return
	}

	metrics.BackendErrorsTotal.WithLabelValues("internal").Inc()
	logger.Error("Unhandled error", "error", err, "path", r.URL.Path)
	writeJSON(w, http.StatusInternalServerError, errorBody{Message: "Something went wrong"})
}

// requireConfirmation enforces the explicit confirmation step destructive
// actions need before any request is issued.
func requireConfirmation(w http.ResponseWriter, r *http.Request) bool {
	if r.FormValue("confirm") == "true" {
		return true
	}
	writeJSON(w, http.StatusBadRequest, errorBody{Message: "This action must be confirmed"})
	return false
}
