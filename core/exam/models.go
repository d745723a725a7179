package exam

import "context"

// HallTicketAction is the set of hall-ticket mutations the exam cell can
// perform on a form.
type HallTicketAction string

const (
	HallTicketEnable  HallTicketAction = "enable"
	HallTicketHold    HallTicketAction = "hold"
	HallTicketRelease HallTicketAction = "release"
)

type Form struct {
	ID                  string   `json:"_id"`
	StudentID           string   `json:"studentId"`
	StudentName         string   `json:"studentName"`
	Department          string   `json:"department"`
	Semester            int      `json:"semester"`
	Subjects            []string `json:"subjects"`
	Verified            bool     `json:"verified"`
	HallTicketAvailable bool     `json:"hallTicketAvailable"`
}

type API interface {
	ListForms(ctx context.Context) ([]Form, error)
	VerifyForm(ctx context.Context, id string) error
	HallTicket(ctx context.Context, id string, action HallTicketAction) error
}

// MarkVerified returns the form with its verified flag set. It is the narrow
// interim patch applied after a successful verify mutation, ahead of the next
// authoritative fetch. Idempotent: applying it twice yields the same form.
func MarkVerified(f Form) Form {
	f.Verified = true
	return f
}

// SetHallTicket flips only the hall-ticket flag; nothing else changes.
func SetHallTicket(f Form, available bool) Form {
	f.HallTicketAvailable = available
	return f
}
