package auth

import (
	"context"
	"strings"
	"time"
)

// Roles
const (
	RoleAdmin          = "admin:"
	RoleAdminOwner     = "admin:owner"
	RoleAdminPrincipal = "admin:principal"
	RoleAdminExamCell  = "admin:examcell"
	RoleAdminFinance   = "admin:finance"
	RoleAdminWarden    = "admin:warden"
)

type Admin struct {
	ID       string   `json:"_id"`
	Name     string   `json:"name"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

func (a Admin) roleStartsWith(prefix string) bool {
	for _, role := range a.Roles {
		if strings.HasPrefix(role, prefix) {
			return true
		}
	}
	return false
}

func (a Admin) IsAdmin() bool    { return a.roleStartsWith(RoleAdmin) }
func (a Admin) IsExamCell() bool { return a.roleStartsWith(RoleAdminExamCell) }
func (a Admin) IsFinance() bool  { return a.roleStartsWith(RoleAdminFinance) }
func (a Admin) IsWarden() bool   { return a.roleStartsWith(RoleAdminWarden) }

// Session is what the auth slice caches: the signed-in admin plus the session
// cookie's expiry as read from its claims. The cookie itself authenticates;
// the expiry is display-only.
type Session struct {
	Admin     Admin
	ExpiresAt time.Time
}

// Credentials is the login payload; validated before send.
type Credentials struct {
	Username string `json:"username" validate:"required,alphanum_"`
	Password string `json:"password" validate:"required,min=8"`
}

type API interface {
	// Login authenticates and sets the session cookie on the shared client.
	Login(ctx context.Context, creds Credentials) (Admin, error)
	Logout(ctx context.Context) error
	RequestPasswordReset(ctx context.Context, email string) error
}
