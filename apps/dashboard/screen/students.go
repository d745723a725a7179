package screen

import (
	"context"
	"sync"

	"github.com/campusdesk/campusdesk/core"
	"github.com/campusdesk/campusdesk/core/course"
	"github.com/campusdesk/campusdesk/core/student"
	"github.com/campusdesk/campusdesk/store"
)

// Students drives the student list view. The screen also shows the course
// list (for its course filter), so both collections load together.
type Students struct {
	st        *store.Store
	api       student.API
	courseAPI course.API
	logger    core.Logger
}

func NewStudents(st *store.Store, api student.API, courseAPI course.API, logger core.Logger) *Students {
	return &Students{st: st, api: api, courseAPI: courseAPI, logger: logger}
}

// Load fetches students and courses in parallel; the two have no data
// dependency on each other and may complete in any order.
func (s *Students) Load(ctx context.Context, force bool) {
	if force {
		s.st.Students.Invalidate()
		s.st.Courses.Invalidate()
	}

	var wg sync.WaitGroup
	if s.st.Students.IsStale() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fetchInto(ctx, s.st.Students, "students.list", s.logger, s.api.List)
		}()
	}
	if s.st.Courses.IsStale() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fetchInto(ctx, s.st.Courses, "courses.list", s.logger, s.courseAPI.List)
		}()
	}
	wg.Wait()
}

func (s *Students) View(f student.QueryFilter) ([]student.Student, store.View[[]student.Student]) {
	snap := s.st.Students.Snapshot()
	return student.Filter(snap.Data, f), snap
}
