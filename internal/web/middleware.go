package web

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/reihansyahfitra/hes-vault-client/internal/logger"
	"github.com/reihansyahfitra/hes-vault-client/internal/metrics"
	"github.com/reihansyahfitra/hes-vault-client/internal/service"
)

type contextKey string

const sessionKey contextKey = "session"

// sessionFromContext returns the session the auth middleware attached.
func sessionFromContext(ctx context.Context) *service.Session {
	sess, _ := ctx.Value(sessionKey).(*service.Session)
	return sess
}

// statusRecorder captures the response status for logging and metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// RequestLogger logs each request with its route, status and duration.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := routeName(r)
		logger.Info("Request handled",
			"method", r.Method,
			"route", route,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// Metrics records request counts and latency per route.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := routeName(r)
		metrics.RequestsTotal.WithLabelValues(route, statusClass(rec.status)).Inc()
		metrics.RequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

func routeName(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tmpl, err := route.GetPathTemplate(); err == nil {
			return tmpl
		}
	}
	return r.URL.Path
}

func statusClass(status int) string {
	return strconv.Itoa(status/100) + "xx"
}

// RequireSession resolves the session cookie and attaches the session to
// the request context, rejecting unauthenticated requests.
func (h *Handlers) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := h.sessions.Get(r)
		if sess == nil {
			writeJSON(w, http.StatusUnauthorized, errorBody{Message: "Please sign in to continue"})
			return
		}
		ctx := context.WithValue(r.Context(), sessionKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin gates mutation and administration routes to the
// administrator team. The backend enforces this independently.
func (h *Handlers) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFromContext(r.Context())
		if sess == nil || !sess.User.IsAdmin() {
			writeJSON(w, http.StatusForbidden, errorBody{Message: "Administrator access required"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
