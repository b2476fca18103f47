package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/reihansyahfitra/hes-vault-client/internal/api"
	"github.com/reihansyahfitra/hes-vault-client/internal/domain"
	"github.com/reihansyahfitra/hes-vault-client/internal/logger"
	"github.com/reihansyahfitra/hes-vault-client/internal/security"
)

// Session is the only state the client persists: the bearer token the
// backend issued plus a cached copy of the profile. Everything else is
// re-fetched per request.
type Session struct {
	ID        string
	Token     string
	User      domain.User
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

type sessionService struct {
	auth AuthAPI
	ttl  time.Duration
	now  func() time.Time
}

func NewSessionService(auth AuthAPI, ttl time.Duration) SessionService {
	return &sessionService{
		auth: auth,
		ttl:  ttl,
		now:  time.Now,
	}
}

func (s *sessionService) Login(ctx context.Context, email, password string) (*Session, error) {
	resp, err := s.auth.Login(ctx, api.Credentials{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	return s.newSession(resp), nil
}

func (s *sessionService) Register(ctx context.Context, name, email, password string) (*Session, error) {
	resp, err := s.auth.Register(ctx, api.RegisterRequest{Name: name, Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	return s.newSession(resp), nil
}

// Logout revokes the token server-side. The local session is destroyed by
// the caller regardless of the outcome.
func (s *sessionService) Logout(ctx context.Context, sess *Session) error {
	return s.auth.Logout(ctx, sess.Token)
}

// Refresh re-reads the profile so role changes take effect without a new
// login. A 401 propagates so the caller can clear the session.
func (s *sessionService) Refresh(ctx context.Context, sess *Session) error {
	me, err := s.auth.Me(ctx, sess.Token)
	if err != nil {
		return err
	}
	sess.User = *me
	return nil
}

// newSession caps the session lifetime at the token's own expiry when the
// token is a readable JWT; sessions must never outlive the token they hold.
func (s *sessionService) newSession(resp *api.AuthResponse) *Session {
	now := s.now()
	expires := now.Add(s.ttl)
	if exp, ok := security.Expiry(resp.Token); ok && exp.Before(expires) {
		logger.Debug("Session lifetime capped at token expiry", "expires_at", exp)
		expires = exp
	}
	return &Session{
		ID:        uuid.NewString(),
		Token:     resp.Token,
		User:      resp.User,
		CreatedAt: now,
		ExpiresAt: expires,
	}
}
