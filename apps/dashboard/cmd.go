package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"golang.org/x/term"

	"github.com/campusdesk/campusdesk/apps/dashboard/screen"
	"github.com/campusdesk/campusdesk/core/auth"
	"github.com/campusdesk/campusdesk/core/course"
	"github.com/campusdesk/campusdesk/core/exam"
	"github.com/campusdesk/campusdesk/core/finance"
	"github.com/campusdesk/campusdesk/core/hostel"
	"github.com/campusdesk/campusdesk/core/student"
	"github.com/campusdesk/campusdesk/core/teacher"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	session  *screen.Session
	home     *screen.Home
	courses  *screen.Courses
	students *screen.Students
	teachers *screen.Teachers
	exams    *screen.Exams
	finance  *screen.Finance
	hostel   *screen.Hostel
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  login -username USERNAME                          - sign in (password prompted)")
	fmt.Println("  logout                                            - sign out and clear cached data")
	fmt.Println("  resetpassword -email EMAIL                        - request a password reset mail")
	fmt.Println("  stats [-refresh]                                  - dashboard totals")
	fmt.Println("  courses [-search S] [-dept D] [-refresh]          - list courses")
	fmt.Println("  course -id ID [-assign TID | -remove TID]         - course detail / teacher assignment")
	fmt.Println("  students [-search S] [-dept D] [-refresh]         - list students")
	fmt.Println("  teachers [-search S] [-dept D] [-refresh]         - list teachers")
	fmt.Println("  exams [-status verified|pending] [-verify ID]     - exam forms / verification")
	fmt.Println("  hallticket -id ID -action enable|hold|release     - hall ticket mutation")
	fmt.Println("  finance [-year Y] [-status S] [-refresh]          - fee payments, salaries, dues")
	fmt.Println("  hostel [-block B] [-available] [-refresh]         - rooms and occupancy")
	fmt.Println("  allocate -room NUMBER -student ID                 - hostel allocation")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	ctx := context.Background()

	switch args[1] {
	case "login":
		return cli.login(ctx, args[2:])
	case "logout":
		return cli.logout(ctx)
	case "resetpassword":
		return cli.resetPassword(ctx, args[2:])
	case "stats":
		return cli.stats(ctx, args[2:])
	case "courses":
		return cli.listCourses(ctx, args[2:])
	case "course":
		return cli.courseDetail(ctx, args[2:])
	case "students":
		return cli.listStudents(ctx, args[2:])
	case "teachers":
		return cli.listTeachers(ctx, args[2:])
	case "exams":
		return cli.examForms(ctx, args[2:])
	case "hallticket":
		return cli.hallTicket(ctx, args[2:])
	case "finance":
		return cli.financeView(ctx, args[2:])
	case "hostel":
		return cli.hostelView(ctx, args[2:])
	case "allocate":
		return cli.allocate(ctx, args[2:])
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) login(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("login", flag.ExitOnError)
	uname := cmd.String("username", "", "The admin's username. The password will be prompted next.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *uname == "" {
		cmd.Usage()
		return errHelp
	}
	fmt.Print("Enter password:")
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Println()
	if err != nil {
		return err
	}
	if err := cli.session.Login(ctx, auth.Credentials{Username: *uname, Password: string(pwd)}); err != nil {
		return err
	}
	sess := cli.session.Current()
	fmt.Printf("Signed in as %s", sess.Data.Admin.Name)
	if d := cli.session.ExpiresIn(); d > 0 {
		fmt.Printf(" (session expires in %s)", d.Round(time.Minute))
	}
	fmt.Println()
	return nil
}

func (cli *commandLine) logout(ctx context.Context) error {
	if err := cli.session.Logout(ctx); err != nil {
		fmt.Println("Server sign-out failed; local session cleared anyway.")
		return err
	}
	fmt.Println("Signed out.")
	return nil
}

func (cli *commandLine) resetPassword(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("resetpassword", flag.ExitOnError)
	email := cmd.String("email", "", "The admin's email address.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		cmd.Usage()
		return errHelp
	}
	if err := cli.session.RequestPasswordReset(ctx, *email); err != nil {
		return err
	}
	fmt.Println("If the address is known, a reset mail is on its way.")
	return nil
}

func (cli *commandLine) stats(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("stats", flag.ExitOnError)
	refresh := cmd.Bool("refresh", false, "Bypass cached data.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	cli.home.Load(ctx, *refresh)
	st := cli.home.View()
	w := newTable()
	fmt.Fprintf(w, "Students\t%d\n", st.Students)
	fmt.Fprintf(w, "Teachers\t%d\n", st.Teachers)
	fmt.Fprintf(w, "Courses\t%d\n", st.Courses)
	fmt.Fprintf(w, "Exam forms verified\t%d/%d\n", st.FormsVerified, st.FormsTotal)
	fmt.Fprintf(w, "Hostel occupancy\t%d/%d\n", st.Occupancy.Occupied, st.Occupancy.Capacity)
	fmt.Fprintf(w, "Fees collected (year, global)\t%.2f\n", st.FeesCollected)
	return w.Flush()
}

func (cli *commandLine) listCourses(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("courses", flag.ExitOnError)
	search := cmd.String("search", "", "Case-insensitive match on name, code or department.")
	dept := cmd.String("dept", "", "Department filter.")
	refresh := cmd.Bool("refresh", false, "Bypass cached data.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	cli.courses.Load(ctx, *refresh)
	view, snap := cli.courses.View(course.QueryFilter{Search: *search, Department: *dept})
	if snap.Err != "" {
		printSliceError(snap.Err, snap.HasData)
	}
	w := newTable()
	fmt.Fprintln(w, "CODE\tNAME\tDEPARTMENT\tSEMESTERS\tTEACHERS")
	for _, c := range view {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n", c.Code, c.Name, c.Department, c.TotalSemesters, len(c.AssignedTeachers))
	}
	return w.Flush()
}

func (cli *commandLine) courseDetail(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("course", flag.ExitOnError)
	id := cmd.String("id", "", "Course ID.")
	assign := cmd.String("assign", "", "Teacher ID to assign.")
	remove := cmd.String("remove", "", "Teacher ID to remove.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		cmd.Usage()
		return errHelp
	}

	if *assign != "" {
		if err := cli.courses.AssignTeacher(ctx, *id, *assign); err != nil {
			return err
		}
		fmt.Println("Teacher assigned.")
	}
	if *remove != "" {
		if err := cli.courses.RemoveTeacher(ctx, *id, *remove); err != nil {
			return err
		}
		fmt.Println("Teacher removed.")
	}

	cli.courses.Select(ctx, *id)
	detail := cli.courses.Detail()
	if detail.Err != "" {
		printSliceError(detail.Err, detail.HasData)
	}
	if !detail.HasData {
		return nil
	}
	c := detail.Data
	fmt.Printf("%s: %s (%s), %d teachers\n", c.Code, c.Name, c.Department, len(c.AssignedTeachers))
	groups, semesters := course.SubjectsBySemester(c)
	w := newTable()
	for _, sem := range semesters {
		for _, sub := range groups[sem] {
			fmt.Fprintf(w, "Semester %d\t%s\t%s\n", sem, sub.Code, sub.Name)
		}
	}
	return w.Flush()
}

func (cli *commandLine) listStudents(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("students", flag.ExitOnError)
	search := cmd.String("search", "", "Case-insensitive match on name, email or department.")
	dept := cmd.String("dept", "", "Department filter.")
	refresh := cmd.Bool("refresh", false, "Bypass cached data.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	cli.students.Load(ctx, *refresh)
	view, snap := cli.students.View(student.QueryFilter{Search: *search, Department: *dept})
	if snap.Err != "" {
		printSliceError(snap.Err, snap.HasData)
	}
	w := newTable()
	fmt.Fprintln(w, "NAME\tEMAIL\tCOURSE\tSEMESTER\tROOM")
	for _, st := range view {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", st.Name, st.Email, st.CourseName, st.Semester, st.HostelRoom.String)
	}
	return w.Flush()
}

func (cli *commandLine) listTeachers(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("teachers", flag.ExitOnError)
	search := cmd.String("search", "", "Case-insensitive match on name, email or department.")
	dept := cmd.String("dept", "", "Department filter.")
	refresh := cmd.Bool("refresh", false, "Bypass cached data.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	cli.teachers.Load(ctx, *refresh)
	view, snap := cli.teachers.View(teacher.QueryFilter{Search: *search, Department: *dept})
	if snap.Err != "" {
		printSliceError(snap.Err, snap.HasData)
	}
	w := newTable()
	fmt.Fprintln(w, "NAME\tEMAIL\tDEPARTMENT\tSUBJECTS")
	for _, t := range view {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.Name, t.Email, t.Department, strings.Join(t.Subjects, ", "))
	}
	return w.Flush()
}

func (cli *commandLine) examForms(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("exams", flag.ExitOnError)
	status := cmd.String("status", "", "verified | pending")
	verify := cmd.String("verify", "", "Form ID to verify.")
	refresh := cmd.Bool("refresh", false, "Bypass cached data.")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	if *verify != "" {
		if err := cli.exams.Verify(ctx, *verify); err != nil {
			return err
		}
		fmt.Println("Form verified.")
	}

	cli.exams.Load(ctx, *refresh)
	view, snap := cli.exams.View(exam.QueryFilter{Status: exam.Status(*status)})
	if snap.Err != "" {
		printSliceError(snap.Err, snap.HasData)
	}
	w := newTable()
	fmt.Fprintln(w, "ID\tSTUDENT\tSEMESTER\tVERIFIED\tHALL TICKET")
	for _, fm := range view {
		fmt.Fprintf(w, "%s\t%s\t%d\t%t\t%t\n", fm.ID, fm.StudentName, fm.Semester, fm.Verified, fm.HallTicketAvailable)
	}
	return w.Flush()
}

func (cli *commandLine) hallTicket(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("hallticket", flag.ExitOnError)
	id := cmd.String("id", "", "Form ID.")
	action := cmd.String("action", "", "enable | hold | release")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *id == "" || *action == "" {
		cmd.Usage()
		return errHelp
	}
	if err := cli.exams.SetHallTicket(ctx, *id, exam.HallTicketAction(*action)); err != nil {
		return err
	}
	fmt.Println("Hall ticket updated.")
	return nil
}

func (cli *commandLine) financeView(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("finance", flag.ExitOnError)
	year := cmd.Int("year", time.Now().Year(), "Academic year.")
	status := cmd.String("status", "", "paid | pending | overdue")
	refresh := cmd.Bool("refresh", false, "Bypass cached data.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	cli.finance.Load(ctx, *year, *refresh)

	payments, viewTotal, snap := cli.finance.Payments(*year, finance.QueryFilter{Status: *status})
	if snap.Err != "" {
		printSliceError(snap.Err, snap.HasData)
	}
	w := newTable()
	fmt.Fprintln(w, "STUDENT\tAMOUNT\tSTATUS\tPAID AT")
	for _, p := range payments {
		paidAt := "-"
		if p.PaidAt.Valid {
			paidAt = p.PaidAt.Time.Format("2006-01-02")
		}
		fmt.Fprintf(w, "%s\t%.2f\t%s\t%s\n", p.StudentName, p.Amount, p.Status, paidAt)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("Collected (filtered view): %.2f\n", viewTotal)
	fmt.Printf("Collected (global, %d): %.2f\n", *year, finance.GrandTotal(snap.Data))

	dues := cli.finance.Dues()
	if dues.HasData {
		fmt.Printf("Outstanding (global): %.2f\n", finance.OutstandingTotal(snap.Data, dues.Data))
	}
	return nil
}

func (cli *commandLine) hostelView(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("hostel", flag.ExitOnError)
	block := cmd.String("block", "", "Block filter.")
	available := cmd.Bool("available", false, "Only rooms with free beds.")
	refresh := cmd.Bool("refresh", false, "Bypass cached data.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	cli.hostel.Load(ctx, *refresh)
	rooms, viewStats, globalStats, snap := cli.hostel.View(hostel.QueryFilter{Block: *block, OnlyAvailable: *available})
	if snap.Err != "" {
		printSliceError(snap.Err, snap.HasData)
	}
	w := newTable()
	fmt.Fprintln(w, "ROOM\tBLOCK\tOCCUPIED\tCAPACITY")
	for _, r := range rooms {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\n", r.Number, r.Block, len(r.Occupants), r.Capacity)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("View: %d/%d occupied; hostel-wide: %d/%d occupied\n",
		viewStats.Occupied, viewStats.Capacity, globalStats.Occupied, globalStats.Capacity)
	return nil
}

func (cli *commandLine) allocate(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("allocate", flag.ExitOnError)
	room := cmd.String("room", "", "Room number, e.g. A101.")
	studentID := cmd.String("student", "", "Student ID.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *room == "" || *studentID == "" {
		cmd.Usage()
		return errHelp
	}
	if err := cli.hostel.Allocate(ctx, hostel.AllocationInput{RoomNumber: *room, StudentID: *studentID}); err != nil {
		return err
	}
	fmt.Println("Student allocated.")
	return nil
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

// printSliceError surfaces a slice's fetch error; when older data is still
// cached it is rendered below the notice rather than blanked out.
func printSliceError(msg string, hasData bool) {
	if hasData {
		fmt.Printf("! %s (showing previously fetched data; re-run with -refresh to retry)\n", msg)
	} else {
		fmt.Printf("! %s (re-run to retry)\n", msg)
	}
}
