package exam

// HallTicketOverlay is a transient layer of locally-known hall-ticket flags,
// keyed by form ID. It exists so a just-completed mutation shows up before the
// next full fetch confirms it, and it must not outlive that fetch: callers
// discard the overlay the moment authoritative data arrives.
type HallTicketOverlay map[string]bool

// Set records the locally-known flag for a form.
func (o HallTicketOverlay) Set(formID string, available bool) {
	o[formID] = available
}

// Apply returns the forms with any overlaid flags in effect. The input slice
// is not mutated. Applying an empty overlay returns the input values
// unchanged.
func (o HallTicketOverlay) Apply(forms []Form) []Form {
	if len(o) == 0 {
		return forms
	}
	out := make([]Form, len(forms))
	for i, fm := range forms {
		if v, ok := o[fm.ID]; ok {
			fm = SetHallTicket(fm, v)
		}
		out[i] = fm
	}
	return out
}
