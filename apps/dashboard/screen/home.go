package screen

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/campusdesk/campusdesk/core"
	"github.com/campusdesk/campusdesk/core/course"
	"github.com/campusdesk/campusdesk/core/exam"
	"github.com/campusdesk/campusdesk/core/finance"
	"github.com/campusdesk/campusdesk/core/hostel"
	"github.com/campusdesk/campusdesk/core/student"
	"github.com/campusdesk/campusdesk/core/teacher"
	"github.com/campusdesk/campusdesk/store"
)

// Stats is the dashboard's aggregate view; every figure here is a global
// total computed over full unfiltered slices.
type Stats struct {
	Students      int
	Teachers      int
	Courses       int
	FormsVerified int
	FormsTotal    int
	Occupancy     hostel.OccupancyStats
	FeesCollected float64 // current academic year
}

// Home drives the landing dashboard. It reads across many slices, so its
// load fans out over every stale one in parallel.
type Home struct {
	st     *store.Store
	logger core.Logger

	studentAPI student.API
	teacherAPI teacher.API
	courseAPI  course.API
	examAPI    exam.API
	financeAPI finance.API
	hostelAPI  hostel.API
}

func NewHome(
	st *store.Store,
	logger core.Logger,
	studentAPI student.API,
	teacherAPI teacher.API,
	courseAPI course.API,
	examAPI exam.API,
	financeAPI finance.API,
	hostelAPI hostel.API,
) *Home {
	return &Home{
		st:         st,
		logger:     logger,
		studentAPI: studentAPI,
		teacherAPI: teacherAPI,
		courseAPI:  courseAPI,
		examAPI:    examAPI,
		financeAPI: financeAPI,
		hostelAPI:  hostelAPI,
	}
}

func (s *Home) Load(ctx context.Context, force bool) {
	year := time.Now().Year()
	yearKey := strconv.Itoa(year)

	if force {
		s.st.Students.Invalidate()
		s.st.Teachers.Invalidate()
		s.st.Courses.Invalidate()
		s.st.ExamForms.Invalidate()
		s.st.FeePayments.Invalidate(yearKey)
		s.st.Rooms.Invalidate()
	}

	var wg sync.WaitGroup
	run := func(fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn()
		}()
	}

	if s.st.Students.IsStale() {
		run(func() { fetchInto(ctx, s.st.Students, "students.list", s.logger, s.studentAPI.List) })
	}
	if s.st.Teachers.IsStale() {
		run(func() { fetchInto(ctx, s.st.Teachers, "teachers.list", s.logger, s.teacherAPI.List) })
	}
	if s.st.Courses.IsStale() {
		run(func() { fetchInto(ctx, s.st.Courses, "courses.list", s.logger, s.courseAPI.List) })
	}
	if s.st.ExamForms.IsStale() {
		run(func() { fetchInto(ctx, s.st.ExamForms, "exams.listForms", s.logger, s.examAPI.ListForms) })
	}
	if s.st.FeePayments.IsStale(yearKey) {
		run(func() {
			fetchIntoKey(ctx, s.st.FeePayments, yearKey, "finance.listPayments", s.logger,
				func(ctx context.Context) ([]finance.FeePayment, error) {
					return s.financeAPI.ListPayments(ctx, year)
				})
		})
	}
	if s.st.Rooms.IsStale() {
		run(func() { fetchInto(ctx, s.st.Rooms, "hostel.listRooms", s.logger, s.hostelAPI.ListRooms) })
	}
	wg.Wait()
}

// View computes the aggregate stats from whatever is currently cached.
func (s *Home) View() Stats {
	forms := s.st.ExamForms.Snapshot().Data
	payments := s.st.FeePayments.Snapshot(strconv.Itoa(time.Now().Year())).Data
	return Stats{
		Students:      len(s.st.Students.Snapshot().Data),
		Teachers:      len(s.st.Teachers.Snapshot().Data),
		Courses:       len(s.st.Courses.Snapshot().Data),
		FormsVerified: exam.VerifiedCount(forms),
		FormsTotal:    len(forms),
		Occupancy:     hostel.Occupancy(s.st.Rooms.Snapshot().Data),
		FeesCollected: finance.GrandTotal(payments),
	}
}
