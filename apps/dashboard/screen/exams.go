package screen

import (
	"context"
	"sync"

	"github.com/campusdesk/campusdesk/core"
	"github.com/campusdesk/campusdesk/core/exam"
	"github.com/campusdesk/campusdesk/store"
)

// Exams drives the exam-cell view: form verification and hall tickets.
//
// Hall-ticket flips are shown through a transient overlay keyed by form ID,
// so the change is visible before the next fetch confirms it. The overlay is
// discarded the moment an authoritative fetch lands; it never outlives one
// fetch cycle.
type Exams struct {
	st     *store.Store
	api    exam.API
	logger core.Logger

	mu      sync.Mutex
	overlay exam.HallTicketOverlay
}

func NewExams(st *store.Store, api exam.API, logger core.Logger) *Exams {
	return &Exams{st: st, api: api, logger: logger, overlay: exam.HallTicketOverlay{}}
}

func (s *Exams) Load(ctx context.Context, force bool) {
	if force {
		s.st.ExamForms.Invalidate()
	}
	if !s.st.ExamForms.IsStale() {
		return
	}
	s.fetchForms(ctx)
}

func (s *Exams) fetchForms(ctx context.Context) {
	seq := s.st.ExamForms.Begin()
	forms, err := s.api.ListForms(ctx)
	if err != nil {
		apiErr := core.NewAPIError("exams.listForms", err)
		s.st.ExamForms.Reject(seq, apiErr.Message)
		return
	}
	if s.st.ExamForms.Resolve(seq, forms) {
		// server truth arrived; drop the local overlay
		s.mu.Lock()
		s.overlay = exam.HallTicketOverlay{}
		s.mu.Unlock()
	}
}

// Verify marks one form verified. On success the change is applied as a
// narrow idempotent patch to that record only; the next real fetch
// reconciles it.
func (s *Exams) Verify(ctx context.Context, formID string) error {
	if err := s.api.VerifyForm(ctx, formID); err != nil {
		return err
	}
	s.st.ExamForms.Patch(func(forms []exam.Form) []exam.Form {
		out := make([]exam.Form, len(forms))
		for i, fm := range forms {
			if fm.ID == formID {
				fm = exam.MarkVerified(fm)
			}
			out[i] = fm
		}
		return out
	})
	return nil
}

// SetHallTicket performs an enable/hold/release mutation. On success the flag
// is recorded in the overlay and the slice's freshness is cleared so the next
// load re-fetches the authoritative state.
func (s *Exams) SetHallTicket(ctx context.Context, formID string, action exam.HallTicketAction) error {
	if err := s.api.HallTicket(ctx, formID, action); err != nil {
		return err
	}
	s.mu.Lock()
	s.overlay.Set(formID, action != exam.HallTicketHold)
	s.mu.Unlock()
	s.st.ExamForms.Invalidate()
	return nil
}

// View returns the filtered forms with the hall-ticket overlay in effect.
func (s *Exams) View(f exam.QueryFilter) ([]exam.Form, store.View[[]exam.Form]) {
	snap := s.st.ExamForms.Snapshot()
	s.mu.Lock()
	overlaid := s.overlay.Apply(snap.Data)
	s.mu.Unlock()
	return exam.Filter(overlaid, f), snap
}
