package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/campusdesk/campusdesk/core"
	"github.com/campusdesk/campusdesk/core/auth"
	"github.com/campusdesk/campusdesk/core/course"
	"github.com/campusdesk/campusdesk/core/exam"
	"github.com/campusdesk/campusdesk/core/finance"
	"github.com/campusdesk/campusdesk/core/hostel"
	"github.com/campusdesk/campusdesk/core/student"
	"github.com/campusdesk/campusdesk/core/teacher"
)

func newTestStore() *Store {
	return New(&core.Config{StaleWindow: 5 * time.Minute})
}

func populate(st *Store) {
	st.Session.Resolve(st.Session.Begin(), auth.Session{Admin: auth.Admin{ID: "a1"}})
	st.Courses.Resolve(st.Courses.Begin(), []course.Course{{ID: "c1"}})
	st.CourseDetail.Resolve(st.CourseDetail.Begin(), course.Course{ID: "c1"})
	st.Students.Resolve(st.Students.Begin(), []student.Student{{ID: "st1"}})
	st.Teachers.Resolve(st.Teachers.Begin(), []teacher.Teacher{{ID: "t1"}})
	st.ExamForms.Resolve(st.ExamForms.Begin(), []exam.Form{{ID: "f1"}})
	st.FeePayments.Resolve("2026", st.FeePayments.Begin("2026"), []finance.FeePayment{{ID: "p1"}})
	st.Salaries.Resolve(st.Salaries.Begin(), []finance.Salary{{ID: "s1"}})
	st.Dues.Resolve(st.Dues.Begin(), []finance.Due{{ID: "d1"}})
	st.Rooms.Resolve(st.Rooms.Begin(), []hostel.Room{{ID: "r1"}})
}

// Reset must clear every slice in one dispatch; no slice may be left with
// data, an error or a freshness stamp.
func TestStoreResetClearsEverything(t *testing.T) {
	st := newTestStore()
	populate(st)

	st.Reset()

	assert.False(t, st.Session.Snapshot().HasData)
	assert.False(t, st.Courses.Snapshot().HasData)
	assert.False(t, st.CourseDetail.Snapshot().HasData)
	assert.False(t, st.Students.Snapshot().HasData)
	assert.False(t, st.Teachers.Snapshot().HasData)
	assert.False(t, st.ExamForms.Snapshot().HasData)
	assert.False(t, st.FeePayments.Snapshot("2026").HasData)
	assert.False(t, st.Salaries.Snapshot().HasData)
	assert.False(t, st.Dues.Snapshot().HasData)
	assert.False(t, st.Rooms.Snapshot().HasData)

	assert.True(t, st.Courses.Snapshot().LastFetched.IsZero())
	assert.True(t, st.Courses.IsStale())
}

// every slice field on Store must be enumerated by slices(); a field missed
// there would survive logout.
func TestStoreResetEnumeratesAllSlices(t *testing.T) {
	st := newTestStore()
	assert.Len(t, st.slices(), 10)
}

func TestStoreSubscribe(t *testing.T) {
	st := newTestStore()

	var calls int
	unsubscribe := st.Subscribe(func() { calls++ })

	st.Courses.Resolve(st.Courses.Begin(), []course.Course{{ID: "c1"}})
	assert.Equal(t, 2, calls, "one for Begin, one for Resolve")

	unsubscribe()
	st.Courses.Invalidate()
	assert.Equal(t, 2, calls, "unsubscribed observers are not called")
}
