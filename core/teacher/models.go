package teacher

import "context"

type Teacher struct {
	ID         string   `json:"_id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Department string   `json:"department"`
	Subjects   []string `json:"subjects"`
}

type API interface {
	List(ctx context.Context) ([]Teacher, error)
}
