package web

import (
	"net/http"
	"sync"
	"time"

	"github.com/reihansyahfitra/hes-vault-client/internal/metrics"
	"github.com/reihansyahfitra/hes-vault-client/internal/service"
)

// SessionStore keeps live browser sessions in memory, keyed by the opaque
// id stored in the session cookie. Sessions hold the backend bearer token;
// losing the process just means users sign in again.
type SessionStore struct {
	cookieName string
	secure     bool
	now        func() time.Time

	mu       sync.RWMutex
	sessions map[string]*service.Session
}

func NewSessionStore(cookieName string, secure bool) *SessionStore {
	return &SessionStore{
		cookieName: cookieName,
		secure:     secure,
		now:        time.Now,
		sessions:   make(map[string]*service.Session),
	}
}

// Put registers the session and sets its cookie on the response.
func (s *SessionStore) Put(w http.ResponseWriter, sess *service.Session) {
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	metrics.ActiveSessions.Inc()

	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    sess.ID,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Get resolves the request's session cookie. Expired sessions are treated
// as absent and removed.
func (s *SessionStore) Get(r *http.Request) *service.Session {
	cookie, err := r.Cookie(s.cookieName)
	if err != nil {
		return nil
	}

	s.mu.RLock()
	sess := s.sessions[cookie.Value]
	s.mu.RUnlock()
	if sess == nil {
		return nil
	}
	if sess.Expired(s.now()) {
		s.remove(sess.ID)
		return nil
	}
	return sess
}

// Destroy drops the session and expires its cookie.
func (s *SessionStore) Destroy(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(s.cookieName); err == nil {
		s.remove(cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// GC removes expired sessions and returns how many were dropped. Called
// from the scheduler.
func (s *SessionStore) GC() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, sess := range s.sessions {
		if sess.Expired(now) {
			delete(s.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		metrics.ActiveSessions.Sub(float64(removed))
	}
	return removed
}

// Len reports the number of stored sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *SessionStore) remove(id string) {
	s.mu.Lock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if ok {
		metrics.ActiveSessions.Dec()
	}
}
