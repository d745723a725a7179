// Package mockapi is an embedded stand-in for the university backend. It
// honors the same envelope contract and session cookie, and is only reachable
// through the single useMockAPI startup flag (demo mode) or httptest in
// integration tests; business logic never branches on it.
package mockapi

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/campusdesk/campusdesk/core/auth"
	"github.com/campusdesk/campusdesk/core/course"
	"github.com/campusdesk/campusdesk/core/exam"
	"github.com/campusdesk/campusdesk/core/finance"
	"github.com/campusdesk/campusdesk/core/hostel"
	"github.com/campusdesk/campusdesk/core/student"
	"github.com/campusdesk/campusdesk/core/teacher"
)

const sessionCookieName = "campusdesk_session"

type (
	Options struct {
		Address        string
		DisableReqLogs bool
	}

	Server interface {
		http.Handler
		Start() error
		Stop(context.Context) error
	}

	server struct {
		opts *Options
		app  *echo.Echo

		mu       sync.Mutex
		admin    auth.Admin
		password string
		courses  []course.Course
		students []student.Student
		teachers []teacher.Teacher
		forms    []exam.Form
		payments map[int][]finance.FeePayment
		salaries []finance.Salary
		dues     []finance.Due
		rooms    []hostel.Room
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts: opts,
		app:  echo.New(),
	}
	s.seed()
	s.setup()
	return s
}

func (s *server) setup() {
	s.app.Pre(middleware.RemoveTrailingSlash())
	if s.opts.DisableReqLogs {
		s.app.Logger.SetLevel(log.OFF)
	} else {
		s.app.Use(middleware.Logger())
	}
	s.app.HideBanner = true

	s.app.POST("/auth/login", s.login)
	s.app.POST("/auth/logout", s.logout)
	s.app.POST("/auth/password-reset", s.passwordReset)

	s.app.GET("/courses", s.listCourses)
	s.app.GET("/courses/:id", s.getCourse)
	s.app.POST("/courses", s.createCourse)
	s.app.POST("/courses/:id/teachers", s.assignTeacher)
	s.app.DELETE("/courses/:id/teachers/:tid", s.removeTeacher)

	s.app.GET("/students", s.listStudents)
	s.app.GET("/students/:id", s.getStudent)
	s.app.GET("/teachers", s.listTeachers)

	s.app.GET("/exams/forms", s.listForms)
	s.app.POST("/exams/forms/:id/verify", s.verifyForm)
	s.app.POST("/exams/forms/:id/hallticket", s.hallTicket)

	s.app.GET("/finance/payments", s.listPayments)
	s.app.GET("/finance/salaries", s.listSalaries)
	s.app.GET("/finance/dues", s.listDues)

	s.app.GET("/hostel/rooms", s.listRooms)
	s.app.POST("/hostel/allocations", s.allocate)
	s.app.DELETE("/hostel/rooms/:id/occupants/:sid", s.vacate)
}

func (s *server) Start() error {
	return s.app.Start(s.opts.Address)
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

type envelope struct {
	Status  bool        `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

func ok(ctx echo.Context, data interface{}) error {
	return ctx.JSON(http.StatusOK, envelope{Status: true, Data: data})
}

func fail(ctx echo.Context, code int, msg string) error {
	return ctx.JSON(code, envelope{Status: false, Message: msg})
}

// --- auth

func (s *server) login(ctx echo.Context) error {
	var creds auth.Credentials
	if err := ctx.Bind(&creds); err != nil {
		return fail(ctx, http.StatusBadRequest, "malformed payload")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if creds.Username != s.admin.Username || creds.Password != s.password {
		return fail(ctx, http.StatusBadRequest, "authentication failed")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		Subject:   s.admin.ID,
		ExpiresAt: time.Now().Add(7 * 24 * time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("mock-secret"))
	if err != nil {
		return fail(ctx, http.StatusInternalServerError, "could not issue session")
	}
	ctx.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
	})
	return ok(ctx, s.admin)
}

func (s *server) logout(ctx echo.Context) error {
	ctx.SetCookie(&http.Cookie{Name: sessionCookieName, Value: "", Path: "/", MaxAge: -1})
	return ok(ctx, nil)
}

func (s *server) passwordReset(ctx echo.Context) error {
	return ok(ctx, nil)
}

// --- courses

func (s *server) listCourses(ctx echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ok(ctx, s.courses)
}

func (s *server) getCourse(ctx echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.courses {
		if c.ID == ctx.Param("id") {
			return ok(ctx, c)
		}
	}
	return fail(ctx, http.StatusNotFound, "course not found")
}

func (s *server) createCourse(ctx echo.Context) error {
	var nc course.NewCourse
	if err := ctx.Bind(&nc); err != nil {
		return fail(ctx, http.StatusBadRequest, "malformed payload")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.courses {
		if c.Code == nc.Code {
			return fail(ctx, http.StatusOK, "a course with this code already exists")
		}
	}
	s.courses = append(s.courses, course.Course{
		ID:               newID("c"),
		Code:             nc.Code,
		Name:             nc.Name,
		Department:       nc.Department,
		TotalSemesters:   nc.TotalSemesters,
		AssignedTeachers: []string{},
	})
	return ok(ctx, nil)
}

func (s *server) assignTeacher(ctx echo.Context) error {
	var body struct {
		TeacherID string `json:"teacherId"`
	}
	if err := ctx.Bind(&body); err != nil {
		return fail(ctx, http.StatusBadRequest, "malformed payload")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.courses {
		if s.courses[i].ID != ctx.Param("id") {
			continue
		}
		for _, tid := range s.courses[i].AssignedTeachers {
			if tid == body.TeacherID {
				return fail(ctx, http.StatusOK, "teacher already assigned")
			}
		}
		s.courses[i].AssignedTeachers = append(s.courses[i].AssignedTeachers, body.TeacherID)
		return ok(ctx, nil)
	}
	return fail(ctx, http.StatusNotFound, "course not found")
}

func (s *server) removeTeacher(ctx echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.courses {
		if s.courses[i].ID != ctx.Param("id") {
			continue
		}
		tid := ctx.Param("tid")
		kept := s.courses[i].AssignedTeachers[:0]
		for _, t := range s.courses[i].AssignedTeachers {
			if t != tid {
				kept = append(kept, t)
			}
		}
		s.courses[i].AssignedTeachers = kept
		return ok(ctx, nil)
	}
	return fail(ctx, http.StatusNotFound, "course not found")
}

// --- students & teachers

func (s *server) listStudents(ctx echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ok(ctx, s.students)
}

func (s *server) getStudent(ctx echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, st := range s.students {
		if st.ID == ctx.Param("id") {
			return ok(ctx, st)
		}
	}
	return fail(ctx, http.StatusNotFound, "student not found")
}

func (s *server) listTeachers(ctx echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ok(ctx, s.teachers)
}

// --- exams

func (s *server) listForms(ctx echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ok(ctx, s.forms)
}

func (s *server) verifyForm(ctx echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.forms {
		if s.forms[i].ID == ctx.Param("id") {
			s.forms[i].Verified = true
			return ok(ctx, nil)
		}
	}
	return fail(ctx, http.StatusNotFound, "form not found")
}

func (s *server) hallTicket(ctx echo.Context) error {
	var body struct {
		Action string `json:"action"`
	}
	if err := ctx.Bind(&body); err != nil {
		return fail(ctx, http.StatusBadRequest, "malformed payload")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.forms {
		if s.forms[i].ID != ctx.Param("id") {
			continue
		}
		switch exam.HallTicketAction(body.Action) {
		case exam.HallTicketEnable, exam.HallTicketRelease:
			s.forms[i].HallTicketAvailable = true
		case exam.HallTicketHold:
			s.forms[i].HallTicketAvailable = false
		default:
			return fail(ctx, http.StatusBadRequest, "unknown hall ticket action")
		}
		return ok(ctx, nil)
	}
	return fail(ctx, http.StatusNotFound, "form not found")
}

// --- finance

func (s *server) listPayments(ctx echo.Context) error {
	year, err := strconv.Atoi(ctx.QueryParam("year"))
	if err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid year")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	payments, okYear := s.payments[year]
	if !okYear {
		payments = []finance.FeePayment{}
	}
	return ok(ctx, payments)
}

func (s *server) listSalaries(ctx echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ok(ctx, s.salaries)
}

func (s *server) listDues(ctx echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ok(ctx, s.dues)
}

// --- hostel

func (s *server) listRooms(ctx echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ok(ctx, s.rooms)
}

func (s *server) allocate(ctx echo.Context) error {
	var in hostel.AllocationInput
	if err := ctx.Bind(&in); err != nil {
		return fail(ctx, http.StatusBadRequest, "malformed payload")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rooms {
		if s.rooms[i].Number != in.RoomNumber {
			continue
		}
		if s.rooms[i].Free() == 0 {
			return fail(ctx, http.StatusOK, "room is full")
		}
		s.rooms[i].Occupants = append(s.rooms[i].Occupants, in.StudentID)
		return ok(ctx, nil)
	}
	return fail(ctx, http.StatusNotFound, "room not found")
}

func (s *server) vacate(ctx echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rooms {
		if s.rooms[i].ID != ctx.Param("id") {
			continue
		}
		sid := ctx.Param("sid")
		kept := s.rooms[i].Occupants[:0]
		for _, occ := range s.rooms[i].Occupants {
			if occ != sid {
				kept = append(kept, occ)
			}
		}
		s.rooms[i].Occupants = kept
		return ok(ctx, nil)
	}
	return fail(ctx, http.StatusNotFound, "room not found")
}
