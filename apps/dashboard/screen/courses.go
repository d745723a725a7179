package screen

import (
	"context"

	"github.com/campusdesk/campusdesk/core"
	"github.com/campusdesk/campusdesk/core/course"
	"github.com/campusdesk/campusdesk/store"
)

// Courses drives the course list and course detail views.
type Courses struct {
	st     *store.Store
	api    course.API
	logger core.Logger

	selectedID string
}

func NewCourses(st *store.Store, api course.API, logger core.Logger) *Courses {
	return &Courses{st: st, api: api, logger: logger}
}

// Load fetches the course list when it is stale (or always, when forced).
// A forced refresh invalidates first so previous data stays on display while
// the fetch is pending.
func (s *Courses) Load(ctx context.Context, force bool) {
	if force {
		s.st.Courses.Invalidate()
	}
	if !s.st.Courses.IsStale() {
		return
	}
	fetchInto(ctx, s.st.Courses, "courses.list", s.logger, s.api.List)
}

// Select switches the detail view to the given course ID. The fetch re-runs
// on every parameter change, not only the first; the slice's sequence guard
// keeps a slow response for a previously selected course from overwriting
// the current one.
func (s *Courses) Select(ctx context.Context, id string) {
	s.selectedID = id
	fetchInto(ctx, s.st.CourseDetail, "courses.get", s.logger, func(ctx context.Context) (course.Course, error) {
		return s.api.Get(ctx, id)
	})
}

// SelectedID returns the course the detail view currently targets.
func (s *Courses) SelectedID() string { return s.selectedID }

// Create submits a new course and, on success, re-fetches the course list.
// A failed mutation is returned to the caller and never written to the slice.
func (s *Courses) Create(ctx context.Context, nc course.NewCourse) error {
	if err := s.api.Create(ctx, nc); err != nil {
		return err
	}
	s.refetchList(ctx)
	return nil
}

// AssignTeacher assigns a teacher to a course and re-fetches only the slices
// that mutation changed: the course list and, when it is showing, the detail.
func (s *Courses) AssignTeacher(ctx context.Context, courseID, teacherID string) error {
	if err := s.api.AssignTeacher(ctx, courseID, teacherID); err != nil {
		return err
	}
	s.refetchAfterTeacherChange(ctx, courseID)
	return nil
}

func (s *Courses) RemoveTeacher(ctx context.Context, courseID, teacherID string) error {
	if err := s.api.RemoveTeacher(ctx, courseID, teacherID); err != nil {
		return err
	}
	s.refetchAfterTeacherChange(ctx, courseID)
	return nil
}

func (s *Courses) refetchAfterTeacherChange(ctx context.Context, courseID string) {
	s.refetchList(ctx)
	if s.selectedID == courseID {
		s.Select(ctx, courseID)
	}
}

func (s *Courses) refetchList(ctx context.Context) {
	s.st.Courses.Invalidate()
	fetchInto(ctx, s.st.Courses, "courses.list", s.logger, s.api.List)
}

// View returns the filtered course list for display.
func (s *Courses) View(f course.QueryFilter) ([]course.Course, store.View[[]course.Course]) {
	snap := s.st.Courses.Snapshot()
	return course.Filter(snap.Data, f), snap
}

func (s *Courses) Detail() store.View[course.Course] {
	return s.st.CourseDetail.Snapshot()
}
