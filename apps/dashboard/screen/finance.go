package screen

import (
	"context"
	"strconv"
	"sync"

	"github.com/campusdesk/campusdesk/core"
	"github.com/campusdesk/campusdesk/core/finance"
	"github.com/campusdesk/campusdesk/store"
)

// Finance drives the finance view: per-year fee payments plus salaries and
// dues. Payments cache per academic year under the keyed slice; switching
// years mid-flight cannot leak an older year's response into a newer one
// since every year is its own key with its own guard.
type Finance struct {
	st     *store.Store
	api    finance.API
	logger core.Logger
}

func NewFinance(st *store.Store, api finance.API, logger core.Logger) *Finance {
	return &Finance{st: st, api: api, logger: logger}
}

func paymentsKey(year int) string { return strconv.Itoa(year) }

// Load fetches the selected year's payments, the salaries and the dues in
// parallel; the three datasets are independent.
func (s *Finance) Load(ctx context.Context, year int, force bool) {
	key := paymentsKey(year)
	if force {
		s.st.FeePayments.Invalidate(key)
		s.st.Salaries.Invalidate()
		s.st.Dues.Invalidate()
	}

	var wg sync.WaitGroup
	if s.st.FeePayments.IsStale(key) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fetchIntoKey(ctx, s.st.FeePayments, key, "finance.listPayments", s.logger,
				func(ctx context.Context) ([]finance.FeePayment, error) {
					return s.api.ListPayments(ctx, year)
				})
		}()
	}
	if s.st.Salaries.IsStale() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fetchInto(ctx, s.st.Salaries, "finance.listSalaries", s.logger, s.api.ListSalaries)
		}()
	}
	if s.st.Dues.IsStale() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fetchInto(ctx, s.st.Dues, "finance.listDues", s.logger, s.api.ListDues)
		}()
	}
	wg.Wait()
}

// Payments returns the filtered payment view for a year along with the
// filtered view's total; the global total for that year rides on the
// snapshot's full data via finance.GrandTotal.
func (s *Finance) Payments(year int, f finance.QueryFilter) ([]finance.FeePayment, float64, store.View[[]finance.FeePayment]) {
	snap := s.st.FeePayments.Snapshot(paymentsKey(year))
	view := finance.FilterPayments(snap.Data, f)
	return view, finance.ViewTotal(view), snap
}

func (s *Finance) Salaries() store.View[[]finance.Salary] {
	return s.st.Salaries.Snapshot()
}

func (s *Finance) Dues() store.View[[]finance.Due] {
	return s.st.Dues.Snapshot()
}
