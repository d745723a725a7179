package student

import (
	"context"

	"github.com/volatiletech/null/v8"
)

type Student struct {
	ID         string      `json:"_id"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Department string      `json:"department"`
	CourseID   string      `json:"courseId"`
	CourseName string      `json:"courseName"`
	Semester   int         `json:"semester"`
	Year       int         `json:"year"`
	HostelRoom null.String `json:"hostelRoom,omitempty"` // unset for day scholars
}

type API interface {
	List(ctx context.Context) ([]Student, error)
	Get(ctx context.Context, id string) (Student, error)
}
