package screen

import (
	"context"

	"github.com/campusdesk/campusdesk/core"
	"github.com/campusdesk/campusdesk/core/teacher"
	"github.com/campusdesk/campusdesk/store"
)

type Teachers struct {
	st     *store.Store
	api    teacher.API
	logger core.Logger
}

func NewTeachers(st *store.Store, api teacher.API, logger core.Logger) *Teachers {
	return &Teachers{st: st, api: api, logger: logger}
}

func (s *Teachers) Load(ctx context.Context, force bool) {
	if force {
		s.st.Teachers.Invalidate()
	}
	if !s.st.Teachers.IsStale() {
		return
	}
	fetchInto(ctx, s.st.Teachers, "teachers.list", s.logger, s.api.List)
}

func (s *Teachers) View(f teacher.QueryFilter) ([]teacher.Teacher, store.View[[]teacher.Teacher]) {
	snap := s.st.Teachers.Snapshot()
	return teacher.Filter(snap.Data, f), snap
}
