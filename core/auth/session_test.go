package auth

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.NoError(t, err)
	return token
}

func TestSessionExpiry(t *testing.T) {
	exp := time.Now().Add(12 * time.Hour).Truncate(time.Second)

	got, err := SessionExpiry(signedToken(t, jwt.MapClaims{"exp": exp.Unix(), "sub": "a1"}))
	assert.NoError(t, err)
	assert.True(t, got.Equal(exp))
}

func TestSessionExpiryMissingClaim(t *testing.T) {
	_, err := SessionExpiry(signedToken(t, jwt.MapClaims{"sub": "a1"}))
	assert.Equal(t, errNoExpiry, err)
}

func TestSessionExpiryGarbageToken(t *testing.T) {
	_, err := SessionExpiry("not-a-jwt")
	assert.Error(t, err)
}

func TestAdminRoles(t *testing.T) {
	tests := []struct {
		name    string
		roles   []string
		isAdmin bool
		isExam  bool
		isFin   bool
		isWard  bool
	}{
		{name: "owner is a plain admin", roles: []string{RoleAdminOwner}, isAdmin: true},
		{name: "exam cell", roles: []string{RoleAdminExamCell}, isAdmin: true, isExam: true},
		{name: "finance and warden", roles: []string{RoleAdminFinance, RoleAdminWarden}, isAdmin: true, isFin: true, isWard: true},
		{name: "no roles", roles: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Admin{Roles: tt.roles}
			assert.Equal(t, tt.isAdmin, a.IsAdmin())
			assert.Equal(t, tt.isExam, a.IsExamCell())
			assert.Equal(t, tt.isFin, a.IsFinance())
			assert.Equal(t, tt.isWard, a.IsWarden())
		})
	}
}
