package hostel

import "context"

type Room struct {
	ID        string   `json:"_id"`
	Number    string   `json:"number"` // block letter + numeric suffix, e.g. A101
	Block     string   `json:"block"`
	Capacity  int      `json:"capacity"`
	Occupants []string `json:"occupants"` // student IDs
}

func (r Room) Free() int {
	if free := r.Capacity - len(r.Occupants); free > 0 {
		return free
	}
	return 0
}

// AllocationInput is the payload for allocating a student to a room.
type AllocationInput struct {
	RoomNumber string `json:"roomNumber" validate:"required,roomnum"`
	StudentID  string `json:"studentId" validate:"required"`
}

type API interface {
	ListRooms(ctx context.Context) ([]Room, error)
	Allocate(ctx context.Context, in AllocationInput) error
	Vacate(ctx context.Context, roomID, studentID string) error
}
