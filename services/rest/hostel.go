package rest

import (
	"context"
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/campusdesk/campusdesk/core"
	"github.com/campusdesk/campusdesk/core/hostel"
)

type hostelAPI struct {
	c          *Client
	validate   *validator.Validate
	translator ut.Translator
}

var _ hostel.API = (*hostelAPI)(nil)

func NewHostelAPI(c *Client, validate *validator.Validate, translator ut.Translator) hostel.API {
	return &hostelAPI{c: c, validate: validate, translator: translator}
}

func (a *hostelAPI) ListRooms(ctx context.Context) ([]hostel.Room, error) {
	var env core.Envelope[[]hostel.Room]
	if err := a.c.Do(ctx, http.MethodGet, "/hostel/rooms", nil, &env); err != nil {
		return nil, core.NewAPIError("hostel.listRooms", err)
	}
	if !env.Status {
		return nil, &core.APIError{Name: "hostel.listRooms", Message: env.ErrMessage()}
	}
	return env.Data, nil
}

func (a *hostelAPI) Allocate(ctx context.Context, in hostel.AllocationInput) error {
	if err := core.ValidateStruct(a.validate, a.translator, in); err != nil {
		return err
	}
	var res core.MutationResult
	if err := a.c.Do(ctx, http.MethodPost, "/hostel/allocations", in, &res); err != nil {
		return core.NewAPIError("hostel.allocate", err)
	}
	if !res.Status {
		return &core.APIError{Name: "hostel.allocate", Message: res.ErrMessage()}
	}
	return nil
}

func (a *hostelAPI) Vacate(ctx context.Context, roomID, studentID string) error {
	var res core.MutationResult
	if err := a.c.Do(ctx, http.MethodDelete, "/hostel/rooms/"+roomID+"/occupants/"+studentID, nil, &res); err != nil {
		return core.NewAPIError("hostel.vacate", err)
	}
	if !res.Status {
		return &core.APIError{Name: "hostel.vacate", Message: res.ErrMessage()}
	}
	return nil
}
