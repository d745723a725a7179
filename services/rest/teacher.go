package rest

import (
	"context"
	"net/http"

	"github.com/campusdesk/campusdesk/core"
	"github.com/campusdesk/campusdesk/core/teacher"
)

type teacherAPI struct {
	c *Client
}

var _ teacher.API = (*teacherAPI)(nil)

func NewTeacherAPI(c *Client) teacher.API {
	return &teacherAPI{c: c}
}

func (a *teacherAPI) List(ctx context.Context) ([]teacher.Teacher, error) {
	var env core.Envelope[[]teacher.Teacher]
	if err := a.c.Do(ctx, http.MethodGet, "/teachers", nil, &env); err != nil {
		return nil, core.NewAPIError("teachers.list", err)
	}
	if !env.Status {
		return nil, &core.APIError{Name: "teachers.list", Message: env.ErrMessage()}
	}
	return env.Data, nil
}
