package rest

import (
	"context"
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/campusdesk/campusdesk/core"
	"github.com/campusdesk/campusdesk/core/course"
)

type courseAPI struct {
	c          *Client
	validate   *validator.Validate
	translator ut.Translator
}

var _ course.API = (*courseAPI)(nil)

func NewCourseAPI(c *Client, validate *validator.Validate, translator ut.Translator) course.API {
	return &courseAPI{c: c, validate: validate, translator: translator}
}

func (a *courseAPI) List(ctx context.Context) ([]course.Course, error) {
	var env core.Envelope[[]course.Course]
	if err := a.c.Do(ctx, http.MethodGet, "/courses", nil, &env); err != nil {
		return nil, core.NewAPIError("courses.list", err)
	}
	if !env.Status {
		return nil, &core.APIError{Name: "courses.list", Message: env.ErrMessage()}
	}
	return env.Data, nil
}

func (a *courseAPI) Get(ctx context.Context, id string) (course.Course, error) {
	var env core.Envelope[course.Course]
	if err := a.c.Do(ctx, http.MethodGet, "/courses/"+id, nil, &env); err != nil {
		return course.Course{}, core.NewAPIError("courses.get", err)
	}
	if !env.Status {
		return course.Course{}, &core.APIError{Name: "courses.get", Message: env.ErrMessage()}
	}
	return env.Data, nil
}

func (a *courseAPI) Create(ctx context.Context, nc course.NewCourse) error {
	if err := core.ValidateStruct(a.validate, a.translator, nc); err != nil {
		return err
	}
	var res core.MutationResult
	if err := a.c.Do(ctx, http.MethodPost, "/courses", nc, &res); err != nil {
		return core.NewAPIError("courses.create", err)
	}
	if !res.Status {
		return &core.APIError{Name: "courses.create", Message: res.ErrMessage()}
	}
	return nil
}

func (a *courseAPI) AssignTeacher(ctx context.Context, courseID, teacherID string) error {
	body := map[string]string{"teacherId": teacherID}
	var res core.MutationResult
	if err := a.c.Do(ctx, http.MethodPost, "/courses/"+courseID+"/teachers", body, &res); err != nil {
		return core.NewAPIError("courses.assignTeacher", err)
	}
	if !res.Status {
		return &core.APIError{Name: "courses.assignTeacher", Message: res.ErrMessage()}
	}
	return nil
}

func (a *courseAPI) RemoveTeacher(ctx context.Context, courseID, teacherID string) error {
	var res core.MutationResult
	if err := a.c.Do(ctx, http.MethodDelete, "/courses/"+courseID+"/teachers/"+teacherID, nil, &res); err != nil {
		return core.NewAPIError("courses.removeTeacher", err)
	}
	if !res.Status {
		return &core.APIError{Name: "courses.removeTeacher", Message: res.ErrMessage()}
	}
	return nil
}
