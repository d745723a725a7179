package course

import "context"

type Subject struct {
	ID       string `json:"_id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Semester int    `json:"semester"`
}

type Course struct {
	ID               string    `json:"_id"`
	Code             string    `json:"code"`
	Name             string    `json:"name"`
	Department       string    `json:"department"`
	TotalSemesters   int       `json:"totalSemesters"`
	AssignedTeachers []string  `json:"assignedTeachers"`
	Subjects         []Subject `json:"subjects"`
}

// NewCourse is the payload for creating a course; validated before send.
type NewCourse struct {
	Code           string `json:"code" validate:"required,alphanum_"`
	Name           string `json:"name" validate:"required"`
	Department     string `json:"department" validate:"required"`
	TotalSemesters int    `json:"totalSemesters" validate:"required,min=1,max=12"`
}

type (
	// API is the REST contract this domain consumes; one call per function,
	// exactly one network attempt, no retries.
	API interface {
		List(ctx context.Context) ([]Course, error)
		Get(ctx context.Context, id string) (Course, error)
		Create(ctx context.Context, nc NewCourse) error
		AssignTeacher(ctx context.Context, courseID, teacherID string) error
		RemoveTeacher(ctx context.Context, courseID, teacherID string) error
	}
)
