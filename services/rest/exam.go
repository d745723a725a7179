package rest

import (
	"context"
	"net/http"

	"github.com/campusdesk/campusdesk/core"
	"github.com/campusdesk/campusdesk/core/exam"
)

type examAPI struct {
	c *Client
}

var _ exam.API = (*examAPI)(nil)

func NewExamAPI(c *Client) exam.API {
	return &examAPI{c: c}
}

func (a *examAPI) ListForms(ctx context.Context) ([]exam.Form, error) {
	var env core.Envelope[[]exam.Form]
	if err := a.c.Do(ctx, http.MethodGet, "/exams/forms", nil, &env); err != nil {
		return nil, core.NewAPIError("exams.listForms", err)
	}
	if !env.Status {
		return nil, &core.APIError{Name: "exams.listForms", Message: env.ErrMessage()}
	}
	return env.Data, nil
}

func (a *examAPI) VerifyForm(ctx context.Context, id string) error {
	var res core.MutationResult
	if err := a.c.Do(ctx, http.MethodPost, "/exams/forms/"+id+"/verify", nil, &res); err != nil {
		return core.NewAPIError("exams.verifyForm", err)
	}
	if !res.Status {
		return &core.APIError{Name: "exams.verifyForm", Message: res.ErrMessage()}
	}
	return nil
}

func (a *examAPI) HallTicket(ctx context.Context, id string, action exam.HallTicketAction) error {
	body := map[string]string{"action": string(action)}
	var res core.MutationResult
	if err := a.c.Do(ctx, http.MethodPost, "/exams/forms/"+id+"/hallticket", body, &res); err != nil {
		return core.NewAPIError("exams.hallTicket", err)
	}
	if !res.Status {
		return &core.APIError{Name: "exams.hallTicket", Message: res.ErrMessage()}
	}
	return nil
}
