package finance

import (
	"context"

	"github.com/volatiletech/null/v8"
)

// Payment statuses as reported by the backend.
const (
	StatusPaid    = "paid"
	StatusPending = "pending"
	StatusOverdue = "overdue"
)

// FeePayment is one student fee record for an academic year.
type FeePayment struct {
	ID          string      `json:"_id"`
	StudentID   string      `json:"studentId"`
	StudentName string      `json:"studentName"`
	Department  string      `json:"department"`
	Amount      float64     `json:"amount"`
	Status      string      `json:"status"`
	Year        int         `json:"year"`
	PaidAt      null.Time   `json:"paidAt,omitempty"`
	Receipt     null.String `json:"receiptNo,omitempty"`
}

type Salary struct {
	ID          string    `json:"_id"`
	TeacherID   string    `json:"teacherId"`
	TeacherName string    `json:"teacherName"`
	Amount      float64   `json:"amount"`
	Month       string    `json:"month"` // e.g. "2026-08"
	PaidAt      null.Time `json:"paidAt,omitempty"`
}

type Due struct {
	ID          string  `json:"_id"`
	StudentID   string  `json:"studentId"`
	StudentName string  `json:"studentName"`
	Amount      float64 `json:"amount"`
	Reason      string  `json:"reason"`
}

type API interface {
	// ListPayments returns the fee records for one academic year.
	ListPayments(ctx context.Context, year int) ([]FeePayment, error)
	ListSalaries(ctx context.Context) ([]Salary, error)
	ListDues(ctx context.Context) ([]Due, error)
}
