package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testPayments = []FeePayment{
	{ID: "p1", StudentName: "Carol Mwangi", Department: "Computer Science", Amount: 1200, Status: StatusPaid},
	{ID: "p2", StudentName: "David Okoro", Department: "Chemistry", Amount: 1200, Status: StatusPending},
	{ID: "p3", StudentName: "Erin Carolan", Department: "Chemistry", Amount: 800, Status: StatusPaid},
	{ID: "p4", StudentName: "Femi Ade", Department: "Physics", Amount: 500, Status: StatusOverdue},
}

func TestFilterPayments(t *testing.T) {
	tests := []struct {
		name    string
		filter  QueryFilter
		wantIDs []string
	}{
		{name: "all", filter: QueryFilter{}, wantIDs: []string{"p1", "p2", "p3", "p4"}},
		{name: "search student or department", filter: QueryFilter{Search: "carol"}, wantIDs: []string{"p1", "p3"}},
		{name: "status", filter: QueryFilter{Status: StatusPaid}, wantIDs: []string{"p1", "p3"}},
		{name: "search AND status", filter: QueryFilter{Search: "chemistry", Status: StatusPaid}, wantIDs: []string{"p3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterPayments(testPayments, tt.filter)
			ids := make([]string, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

// the filtered view's total and the grand total are distinct figures; a
// department filter must shrink the former and never the latter.
func TestViewTotalVersusGrandTotal(t *testing.T) {
	view := FilterPayments(testPayments, QueryFilter{Search: "chemistry"})

	assert.Equal(t, 800.0, ViewTotal(view))
	assert.Equal(t, 2000.0, GrandTotal(testPayments))
}

func TestOutstandingTotal(t *testing.T) {
	dues := []Due{
		{ID: "d1", Amount: 150, Reason: "library fine"},
		{ID: "d2", Amount: 50, Reason: "lab breakage"},
	}

	// pending 1200 + overdue 500 + dues 200
	assert.Equal(t, 1900.0, OutstandingTotal(testPayments, dues))
	assert.Equal(t, 0.0, OutstandingTotal(nil, nil))
}
