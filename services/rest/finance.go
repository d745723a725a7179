package rest

import (
	"context"
	"net/http"
	"strconv"

	"github.com/campusdesk/campusdesk/core"
	"github.com/campusdesk/campusdesk/core/finance"
)

type financeAPI struct {
	c *Client
}

var _ finance.API = (*financeAPI)(nil)

func NewFinanceAPI(c *Client) finance.API {
	return &financeAPI{c: c}
}

func (a *financeAPI) ListPayments(ctx context.Context, year int) ([]finance.FeePayment, error) {
	var env core.Envelope[[]finance.FeePayment]
	path := "/finance/payments?year=" + strconv.Itoa(year)
	if err := a.c.Do(ctx, http.MethodGet, path, nil, &env); err != nil {
		return nil, core.NewAPIError("finance.listPayments", err)
	}
	if !env.Status {
		return nil, &core.APIError{Name: "finance.listPayments", Message: env.ErrMessage()}
	}
	return env.Data, nil
}

func (a *financeAPI) ListSalaries(ctx context.Context) ([]finance.Salary, error) {
	var env core.Envelope[[]finance.Salary]
	if err := a.c.Do(ctx, http.MethodGet, "/finance/salaries", nil, &env); err != nil {
		return nil, core.NewAPIError("finance.listSalaries", err)
	}
	if !env.Status {
		return nil, &core.APIError{Name: "finance.listSalaries", Message: env.ErrMessage()}
	}
	return env.Data, nil
}

func (a *financeAPI) ListDues(ctx context.Context) ([]finance.Due, error) {
	var env core.Envelope[[]finance.Due]
	if err := a.c.Do(ctx, http.MethodGet, "/finance/dues", nil, &env); err != nil {
		return nil, core.NewAPIError("finance.listDues", err)
	}
	if !env.Status {
		return nil, &core.APIError{Name: "finance.listDues", Message: env.ErrMessage()}
	}
	return env.Data, nil
}
