package rest

import (
	"context"
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/campusdesk/campusdesk/core"
	"github.com/campusdesk/campusdesk/core/auth"
)

// SessionCookieName is the cookie the backend sets on login.
const SessionCookieName = "campusdesk_session"

type authAPI struct {
	c          *Client
	validate   *validator.Validate
	translator ut.Translator
}

var _ auth.API = (*authAPI)(nil)

func NewAuthAPI(c *Client, validate *validator.Validate, translator ut.Translator) auth.API {
	return &authAPI{c: c, validate: validate, translator: translator}
}

// Login authenticates against the backend; the session cookie lands in the
// shared client's jar and rides on every subsequent request.
func (a *authAPI) Login(ctx context.Context, creds auth.Credentials) (auth.Admin, error) {
	creds.Username = core.CleanString(creds.Username, true)
	if err := core.ValidateStruct(a.validate, a.translator, creds); err != nil {
		return auth.Admin{}, err
	}
	var env core.Envelope[auth.Admin]
	if err := a.c.Do(ctx, http.MethodPost, "/auth/login", creds, &env); err != nil {
		return auth.Admin{}, core.NewAPIError("auth.login", err)
	}
	if !env.Status {
		return auth.Admin{}, &core.APIError{Name: "auth.login", Message: env.ErrMessage()}
	}
	return env.Data, nil
}

func (a *authAPI) Logout(ctx context.Context) error {
	var res core.MutationResult
	if err := a.c.Do(ctx, http.MethodPost, "/auth/logout", nil, &res); err != nil {
		return core.NewAPIError("auth.logout", err)
	}
	if !res.Status {
		return &core.APIError{Name: "auth.logout", Message: res.ErrMessage()}
	}
	return nil
}

func (a *authAPI) RequestPasswordReset(ctx context.Context, email string) error {
	body := map[string]string{"email": core.CleanString(email, true)}
	var res core.MutationResult
	if err := a.c.Do(ctx, http.MethodPost, "/auth/password-reset", body, &res); err != nil {
		return core.NewAPIError("auth.passwordReset", err)
	}
	if !res.Status {
		return &core.APIError{Name: "auth.passwordReset", Message: res.ErrMessage()}
	}
	return nil
}
