package mockapi

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/campusdesk/campusdesk/core/auth"
	"github.com/campusdesk/campusdesk/core/course"
	"github.com/campusdesk/campusdesk/core/exam"
	"github.com/campusdesk/campusdesk/core/finance"
	"github.com/campusdesk/campusdesk/core/hostel"
	"github.com/campusdesk/campusdesk/core/student"
	"github.com/campusdesk/campusdesk/core/teacher"
)

var idCount uint64

func newID(prefix string) string {
	return prefix + strconv.FormatUint(atomic.AddUint64(&idCount, 1), 10)
}

// seed loads a small, self-consistent campus so demo mode has something to
// show on every screen.
func (s *server) seed() {
	s.admin = auth.Admin{
		ID:       newID("a"),
		Name:     "Default Admin",
		Username: "admin",
		Email:    "admin@campusdesk.local",
		Roles:    []string{auth.RoleAdminOwner},
	}
	s.password = "super-secret"

	csTeacher := teacher.Teacher{
		ID: newID("t"), Name: "Ada Chemistry", Email: "ada@campusdesk.local",
		Department: "Physics", Subjects: []string{"Quantum Mechanics"},
	}
	chemTeacher := teacher.Teacher{
		ID: newID("t"), Name: "Bob Boyle", Email: "bob@campusdesk.local",
		Department: "Chemistry", Subjects: []string{"Organic Chemistry"},
	}
	s.teachers = []teacher.Teacher{csTeacher, chemTeacher}

	cs := course.Course{
		ID: newID("c"), Code: "BSCS", Name: "BSc Computer Science",
		Department: "Computer Science", TotalSemesters: 6,
		AssignedTeachers: []string{},
		Subjects: []course.Subject{
			{ID: newID("s"), Code: "CS101", Name: "Programming I", Semester: 1},
			{ID: newID("s"), Code: "CS102", Name: "Discrete Math", Semester: 1},
			{ID: newID("s"), Code: "CS201", Name: "Data Structures", Semester: 2},
		},
	}
	chem := course.Course{
		ID: newID("c"), Code: "BSCH", Name: "BSc Chemistry",
		Department: "Chemistry", TotalSemesters: 6,
		AssignedTeachers: []string{chemTeacher.ID},
		Subjects: []course.Subject{
			{ID: newID("s"), Code: "CH101", Name: "Inorganic Chemistry", Semester: 1},
		},
	}
	s.courses = []course.Course{cs, chem}

	st1 := student.Student{
		ID: newID("st"), Name: "Carol Mwangi", Email: "carol@students.campusdesk.local",
		Department: "Computer Science", CourseID: cs.ID, CourseName: cs.Name,
		Semester: 2, Year: 1, HostelRoom: null.StringFrom("A101"),
	}
	st2 := student.Student{
		ID: newID("st"), Name: "David Okoro", Email: "david@students.campusdesk.local",
		Department: "Chemistry", CourseID: chem.ID, CourseName: chem.Name,
		Semester: 4, Year: 2,
	}
	s.students = []student.Student{st1, st2}

	s.forms = []exam.Form{
		{
			ID: newID("f"), StudentID: st1.ID, StudentName: st1.Name,
			Department: st1.Department, Semester: st1.Semester,
			Subjects: []string{"CS201"}, Verified: false, HallTicketAvailable: false,
		},
		{
			ID: newID("f"), StudentID: st2.ID, StudentName: st2.Name,
			Department: st2.Department, Semester: st2.Semester,
			Subjects: []string{"CH101"}, Verified: true, HallTicketAvailable: true,
		},
	}

	year := time.Now().Year()
	s.payments = map[int][]finance.FeePayment{
		year: {
			{
				ID: newID("p"), StudentID: st1.ID, StudentName: st1.Name,
				Department: st1.Department, Amount: 1200, Status: finance.StatusPaid,
				Year: year, PaidAt: null.TimeFrom(time.Now().AddDate(0, -1, 0)),
				Receipt: null.StringFrom("RCPT-0001"),
			},
			{
				ID: newID("p"), StudentID: st2.ID, StudentName: st2.Name,
				Department: st2.Department, Amount: 1200, Status: finance.StatusPending,
				Year: year,
			},
		},
	}
	s.salaries = []finance.Salary{
		{
			ID: newID("sal"), TeacherID: csTeacher.ID, TeacherName: csTeacher.Name,
			Amount: 4000, Month: time.Now().Format("2006-01"),
			PaidAt: null.TimeFrom(time.Now().AddDate(0, 0, -3)),
		},
	}
	s.dues = []finance.Due{
		{
			ID: newID("d"), StudentID: st2.ID, StudentName: st2.Name,
			Amount: 150, Reason: "lab breakage",
		},
	}

	s.rooms = []hostel.Room{
		{ID: newID("r"), Number: "A101", Block: "A", Capacity: 2, Occupants: []string{st1.ID}},
		{ID: newID("r"), Number: "A2", Block: "A", Capacity: 2, Occupants: []string{}},
		{ID: newID("r"), Number: "A10", Block: "A", Capacity: 3, Occupants: []string{}},
		{ID: newID("r"), Number: "B1", Block: "B", Capacity: 1, Occupants: []string{}},
	}
}
