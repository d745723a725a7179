package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/campusdesk/campusdesk/core"
	"github.com/campusdesk/campusdesk/core/course"
	"github.com/campusdesk/campusdesk/core/exam"
	"github.com/campusdesk/campusdesk/core/finance"
	"github.com/campusdesk/campusdesk/core/hostel"
	"github.com/campusdesk/campusdesk/core/student"
	"github.com/campusdesk/campusdesk/core/teacher"
)

// Logger collects log lines in memory so tests can run quiet and assert on
// what was reported.
type Logger struct {
	Lines []string
}

var _ core.Logger = (*Logger)(nil)

func NewLogger() *Logger { return &Logger{} }

func (l *Logger) log(level, msg string, args []interface{}) {
	line := level + ": " + msg
	for _, arg := range args {
		line += fmt.Sprintf(" %+v", arg)
	}
	l.Lines = append(l.Lines, line)
}

func (l *Logger) Enable(bool)                           {}
func (l *Logger) Debug(msg string, args ...interface{}) { l.log("DEBUG", msg, args) }
func (l *Logger) Info(msg string, args ...interface{})  { l.log("INFO", msg, args) }
func (l *Logger) Warn(msg string, args ...interface{})  { l.log("WARN", msg, args) }
func (l *Logger) Error(msg string, args ...interface{}) { l.log("ERROR", msg, args) }
func (l *Logger) Fatal(msg string, args ...interface{}) { l.log("FATAL", msg, args) }

// NewConfig returns a config suitable for tests: short freshness window, no
// external reporting.
func NewConfig(t *testing.T) *core.Config {
	t.Helper()
	return &core.Config{
		Debug:       true,
		TestMode:    true,
		Env:         "TEST",
		AppName:     "Campusdesk",
		Build:       "test",
		StaleWindow: 5 * time.Minute,
	}
}

func MakeCourse(id, code, name, dept string, teachers ...string) course.Course {
	if teachers == nil {
		teachers = []string{}
	}
	return course.Course{
		ID: id, Code: code, Name: name, Department: dept,
		TotalSemesters: 6, AssignedTeachers: teachers,
	}
}

func MakeStudent(id, name, email, dept, courseID, courseName string, semester int) student.Student {
	return student.Student{
		ID: id, Name: name, Email: email, Department: dept,
		CourseID: courseID, CourseName: courseName, Semester: semester, Year: (semester + 1) / 2,
	}
}

func MakeTeacher(id, name, email, dept string) teacher.Teacher {
	return teacher.Teacher{ID: id, Name: name, Email: email, Department: dept}
}

func MakeForm(id, studentID, studentName string, semester int, verified bool) exam.Form {
	return exam.Form{
		ID: id, StudentID: studentID, StudentName: studentName,
		Semester: semester, Verified: verified,
	}
}

func MakePayment(id, studentName string, amount float64, status string, year int) finance.FeePayment {
	return finance.FeePayment{
		ID: id, StudentName: studentName, Amount: amount, Status: status, Year: year,
	}
}

func MakeRoom(number, block string, capacity int, occupants ...string) hostel.Room {
	if occupants == nil {
		occupants = []string{}
	}
	return hostel.Room{
		ID: "room-" + number, Number: number, Block: block,
		Capacity: capacity, Occupants: occupants,
	}
}
