package rest

import (
	"context"
	"net/http"

	"github.com/campusdesk/campusdesk/core"
	"github.com/campusdesk/campusdesk/core/student"
)

type studentAPI struct {
	c *Client
}

var _ student.API = (*studentAPI)(nil)

func NewStudentAPI(c *Client) student.API {
	return &studentAPI{c: c}
}

func (a *studentAPI) List(ctx context.Context) ([]student.Student, error) {
	var env core.Envelope[[]student.Student]
	if err := a.c.Do(ctx, http.MethodGet, "/students", nil, &env); err != nil {
		return nil, core.NewAPIError("students.list", err)
	}
	if !env.Status {
		return nil, &core.APIError{Name: "students.list", Message: env.ErrMessage()}
	}
	return env.Data, nil
}

func (a *studentAPI) Get(ctx context.Context, id string) (student.Student, error) {
	var env core.Envelope[student.Student]
	if err := a.c.Do(ctx, http.MethodGet, "/students/"+id, nil, &env); err != nil {
		return student.Student{}, core.NewAPIError("students.get", err)
	}
	if !env.Status {
		return student.Student{}, &core.APIError{Name: "students.get", Message: env.ErrMessage()}
	}
	return env.Data, nil
}
