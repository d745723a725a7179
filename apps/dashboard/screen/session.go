package screen

import (
	"context"
	"fmt"
	"time"

	"github.com/campusdesk/campusdesk/core"
	"github.com/campusdesk/campusdesk/core/auth"
	"github.com/campusdesk/campusdesk/store"
)

// SessionCookieReader exposes the session cookie the login response set on
// the shared HTTP client.
type SessionCookieReader interface {
	SessionCookie(name string) string
}

// Session drives sign-in and sign-out.
type Session struct {
	st         *store.Store
	api        auth.API
	cookies    SessionCookieReader
	cookieName string
	logger     core.Logger
}

func NewSession(st *store.Store, api auth.API, cookies SessionCookieReader, cookieName string, logger core.Logger) *Session {
	return &Session{st: st, api: api, cookies: cookies, cookieName: cookieName, logger: logger}
}

// Login authenticates and caches the session. A login failure is returned to
// the caller and leaves the session slice untouched.
func (s *Session) Login(ctx context.Context, creds auth.Credentials) error {
	seq := s.st.Session.Begin()
	adm, err := s.api.Login(ctx, creds)
	if err != nil {
		apiErr := core.NewAPIError("auth.login", err)
		s.st.Session.Reject(seq, apiErr.Message)
		return err
	}

	sess := auth.Session{Admin: adm}
	if token := s.cookies.SessionCookie(s.cookieName); token != "" {
		if exp, err := auth.SessionExpiry(token); err == nil {
			sess.ExpiresAt = exp
		} else {
			s.logger.Debug(fmt.Sprintf("auth.login: unreadable session expiry: %v", err))
		}
	}
	s.st.Session.Resolve(seq, sess)
	s.logger.Info("signed in", adm)
	return nil
}

// Logout tells the backend, then clears every user-scoped slice in one
// store-wide reset. The reset happens even when the backend call fails: the
// local session is gone either way.
func (s *Session) Logout(ctx context.Context) error {
	err := s.api.Logout(ctx)
	s.st.Reset()
	return err
}

// RequestPasswordReset asks the backend to mail a reset link. Nothing is
// cached; the outcome goes straight back to the caller.
func (s *Session) RequestPasswordReset(ctx context.Context, email string) error {
	return s.api.RequestPasswordReset(ctx, email)
}

// Current returns the cached session view.
func (s *Session) Current() store.View[auth.Session] {
	return s.st.Session.Snapshot()
}

// ExpiresIn reports how long until the session cookie lapses; zero when
// unknown or already past.
func (s *Session) ExpiresIn() time.Duration {
	sess := s.st.Session.Snapshot()
	if !sess.HasData || sess.Data.ExpiresAt.IsZero() {
		return 0
	}
	if d := time.Until(sess.Data.ExpiresAt); d > 0 {
		return d
	}
	return 0
}
