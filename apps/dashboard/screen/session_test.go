package screen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campusdesk/campusdesk/core/auth"
	"github.com/campusdesk/campusdesk/core/course"
	"github.com/campusdesk/campusdesk/services/rest"
)

func newSessionScreen(env *testEnv) *Session {
	return NewSession(env.st, env.authAPI, env.client, rest.SessionCookieName, env.logger)
}

func TestSessionLogin(t *testing.T) {
	env := newTestEnv(t)
	s := newSessionScreen(env)
	ctx := context.Background()

	err := s.Login(ctx, auth.Credentials{Username: "admin", Password: "super-secret"})
	assert.NoError(t, err)

	sess := s.Current()
	assert.True(t, sess.HasData)
	assert.Equal(t, "admin", sess.Data.Admin.Username)
	assert.True(t, sess.Data.Admin.IsAdmin())
	assert.False(t, sess.Data.ExpiresAt.IsZero(), "expiry read from the session cookie")
	assert.Greater(t, s.ExpiresIn().Hours(), 1.0)
}

func TestSessionLoginFailure(t *testing.T) {
	env := newTestEnv(t)
	s := newSessionScreen(env)
	ctx := context.Background()

	err := s.Login(ctx, auth.Credentials{Username: "admin", Password: "wrong-password"})
	assert.Error(t, err)

	sess := s.Current()
	assert.False(t, sess.HasData)
	assert.Equal(t, "authentication failed", sess.Err)
}

func TestSessionRequestPasswordReset(t *testing.T) {
	env := newTestEnv(t)
	s := newSessionScreen(env)

	err := s.RequestPasswordReset(context.Background(), "admin@campusdesk.local")
	assert.NoError(t, err)
	assert.Equal(t, 1, env.backend.count("/auth/password-reset"))
}

// signing out clears every cached slice in one sweep; nothing user-scoped
// may survive into the next session.
func TestSessionLogoutResetsStore(t *testing.T) {
	env := newTestEnv(t)
	s := newSessionScreen(env)
	courses := NewCourses(env.st, env.courseAPI, env.logger)
	ctx := context.Background()

	assert.NoError(t, s.Login(ctx, auth.Credentials{Username: "admin", Password: "super-secret"}))
	courses.Load(ctx, false)
	_, snap := courses.View(course.QueryFilter{})
	assert.True(t, snap.HasData)

	assert.NoError(t, s.Logout(ctx))

	assert.False(t, s.Current().HasData)
	_, snap = courses.View(course.QueryFilter{})
	assert.False(t, snap.HasData)
	assert.Empty(t, snap.Data)
}
