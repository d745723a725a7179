package finance

import "strings"

// QueryFilter applies an AND operation on its non-empty fields.
// Search does a case-insensitive match on FeePayment.StudentName or
// FeePayment.Department.
type QueryFilter struct {
	Search string
	Status string
}

func (f QueryFilter) Match(p FeePayment) bool {
	if f.Search != "" {
		s := strings.ToLower(f.Search)
		if !(strings.Contains(strings.ToLower(p.StudentName), s) ||
			strings.Contains(strings.ToLower(p.Department), s)) {
			return false
		}
	}
	if f.Status != "" && !strings.EqualFold(p.Status, f.Status) {
		return false
	}
	return true
}

func FilterPayments(payments []FeePayment, f QueryFilter) []FeePayment {
	out := make([]FeePayment, 0, len(payments))
	for _, p := range payments {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

// ViewTotal sums the paid amounts of the payments currently in view (i.e. an
// already-filtered collection). Not interchangeable with GrandTotal.
func ViewTotal(view []FeePayment) float64 {
	var total float64
	for _, p := range view {
		if p.Status == StatusPaid {
			total += p.Amount
		}
	}
	return total
}

// GrandTotal sums the paid amounts over the full unfiltered slice; screens
// must label it as a global figure, never as the filtered view's total.
func GrandTotal(all []FeePayment) float64 {
	return ViewTotal(all)
}

// OutstandingTotal sums unpaid fee amounts plus standalone dues.
func OutstandingTotal(payments []FeePayment, dues []Due) float64 {
	var total float64
	for _, p := range payments {
		if p.Status != StatusPaid {
			total += p.Amount
		}
	}
	for _, d := range dues {
		total += d.Amount
	}
	return total
}
