package main

import (
	"fmt"
	"log"
	"net/http/httptest"
	"os"

	"github.com/campusdesk/campusdesk/apps/dashboard/screen"
	"github.com/campusdesk/campusdesk/core"
	logsvc "github.com/campusdesk/campusdesk/services/logger"
	"github.com/campusdesk/campusdesk/services/mockapi"
	"github.com/campusdesk/campusdesk/services/rest"
	"github.com/campusdesk/campusdesk/store"
)

func main() {
	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stderr, "DASH : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	// demo mode: stand up the embedded backend and point the client at it.
	// Decided once here; nothing downstream knows which backend it talks to.
	if conf.UseMockAPI {
		mock := httptest.NewServer(mockapi.NewServer(&mockapi.Options{DisableReqLogs: true}))
		defer mock.Close()
		conf.APIBaseURL = mock.URL
		logger.Info("using embedded mock backend (sign in with admin / super-secret)")
	}

	validate, translator := core.NewValidator()

	client, err := rest.NewClient(conf, logger)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up API client: %v", err), err)
	}

	st := store.New(conf)

	authAPI := rest.NewAuthAPI(client, validate, translator)
	courseAPI := rest.NewCourseAPI(client, validate, translator)
	studentAPI := rest.NewStudentAPI(client)
	teacherAPI := rest.NewTeacherAPI(client)
	examAPI := rest.NewExamAPI(client)
	financeAPI := rest.NewFinanceAPI(client)
	hostelAPI := rest.NewHostelAPI(client, validate, translator)

	cli := &commandLine{
		session:  screen.NewSession(st, authAPI, client, rest.SessionCookieName, logger),
		home:     screen.NewHome(st, logger, studentAPI, teacherAPI, courseAPI, examAPI, financeAPI, hostelAPI),
		courses:  screen.NewCourses(st, courseAPI, logger),
		students: screen.NewStudents(st, studentAPI, courseAPI, logger),
		teachers: screen.NewTeachers(st, teacherAPI, logger),
		exams:    screen.NewExams(st, examAPI, logger),
		finance:  screen.NewFinance(st, financeAPI, logger),
		hostel:   screen.NewHostel(st, hostelAPI, logger),
	}

	if err := cli.run(os.Args); err != nil {
		if err == errHelp {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
