package store

import (
	"sync"

	"github.com/campusdesk/campusdesk/core"
	"github.com/campusdesk/campusdesk/core/auth"
	"github.com/campusdesk/campusdesk/core/course"
	"github.com/campusdesk/campusdesk/core/exam"
	"github.com/campusdesk/campusdesk/core/finance"
	"github.com/campusdesk/campusdesk/core/hostel"
	"github.com/campusdesk/campusdesk/core/student"
	"github.com/campusdesk/campusdesk/core/teacher"
)

type resettable interface {
	Reset()
}

// Store is the single shared holder of fetched server state, created once at
// startup. Screens read via Snapshot/selectors and write only through the
// slices' Begin/Resolve/Reject methods.
type Store struct {
	Session      *Slice[auth.Session]
	Courses      *Slice[[]course.Course]
	CourseDetail *Slice[course.Course]
	Students     *Slice[[]student.Student]
	Teachers     *Slice[[]teacher.Teacher]
	ExamForms    *Slice[[]exam.Form]
	FeePayments  *KeyedSlice[[]finance.FeePayment] // keyed by academic year
	Salaries     *Slice[[]finance.Salary]
	Dues         *Slice[[]finance.Due]
	Rooms        *Slice[[]hostel.Room]

	mu      sync.Mutex
	subs    map[int]func()
	nextSub int
}

func New(conf *core.Config) *Store {
	w := conf.StaleWindow
	st := &Store{
		Session:      NewSlice[auth.Session](w),
		Courses:      NewSlice[[]course.Course](w),
		CourseDetail: NewSlice[course.Course](w),
		Students:     NewSlice[[]student.Student](w),
		Teachers:     NewSlice[[]teacher.Teacher](w),
		ExamForms:    NewSlice[[]exam.Form](w),
		FeePayments:  NewKeyedSlice[[]finance.FeePayment](w),
		Salaries:     NewSlice[[]finance.Salary](w),
		Dues:         NewSlice[[]finance.Due](w),
		Rooms:        NewSlice[[]hostel.Room](w),
		subs:         make(map[int]func()),
	}
	st.Session.notify = st.publish
	st.Courses.notify = st.publish
	st.CourseDetail.notify = st.publish
	st.Students.notify = st.publish
	st.Teachers.notify = st.publish
	st.ExamForms.notify = st.publish
	st.FeePayments.notify = st.publish
	st.Salaries.notify = st.publish
	st.Dues.notify = st.publish
	st.Rooms.notify = st.publish
	return st
}

// slices enumerates every slice holding user- or session-scoped data. New
// slices must be added here so Reset can never miss one.
func (st *Store) slices() []resettable {
	return []resettable{
		st.Session,
		st.Courses,
		st.CourseDetail,
		st.Students,
		st.Teachers,
		st.ExamForms,
		st.FeePayments,
		st.Salaries,
		st.Dues,
		st.Rooms,
	}
}

// Reset clears every slice in one pass; used on logout. Callers never clear
// slices individually.
func (st *Store) Reset() {
	for _, s := range st.slices() {
		s.Reset()
	}
}

// Subscribe registers fn to run after every committed state change and
// returns the matching unsubscribe.
func (st *Store) Subscribe(fn func()) (unsubscribe func()) {
	st.mu.Lock()
	id := st.nextSub
	st.nextSub++
	st.subs[id] = fn
	st.mu.Unlock()
	return func() {
		st.mu.Lock()
		delete(st.subs, id)
		st.mu.Unlock()
	}
}

func (st *Store) publish() {
	st.mu.Lock()
	fns := make([]func(), 0, len(st.subs))
	for _, fn := range st.subs {
		fns = append(fns, fn)
	}
	st.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
