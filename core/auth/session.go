package auth

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
)

var errNoExpiry = errors.New("session token carries no expiry")

// SessionExpiry reads the expiry claim out of the backend's JWT session
// cookie. The token is deliberately parsed unverified: the cookie is what
// authenticates requests, this value is only shown to the user so they know
// when they will be signed out.
func SessionExpiry(token string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return time.Time{}, errors.Wrap(err, "parsing session token")
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return time.Time{}, errNoExpiry
	}
	return time.Unix(int64(exp), 0), nil
}
