// Package screen holds the per-screen orchestrators: the only layer that
// decides when a slice is fetched and which slices a successful mutation
// invalidates. Screens never reload the whole application; a mutation
// re-fetches exactly the slices whose truth it changed.
package screen

import (
	"context"
	"fmt"

	"github.com/campusdesk/campusdesk/core"
	"github.com/campusdesk/campusdesk/store"
)

// fetchInto runs one fetch against a slice: Begin, call, Resolve|Reject.
// A failure only sets the slice's error; previously displayed data stays.
// Callers wanting parallel fetches run several of these in goroutines; the
// sequence guard makes any completion order safe.
func fetchInto[T any](ctx context.Context, sl *store.Slice[T], name string, logger core.Logger, call func(context.Context) (T, error)) {
	seq := sl.Begin()
	data, err := call(ctx)
	if err != nil {
		apiErr := core.NewAPIError(name, err)
		if sl.Reject(seq, apiErr.Message) {
			logger.Warn(fmt.Sprintf("%s: fetch failed: %v", name, err), err)
		}
		return
	}
	if !sl.Resolve(seq, data) {
		logger.Debug(fmt.Sprintf("%s: superseded response discarded", name))
	}
}

// fetchIntoKey is fetchInto for one key of a keyed slice.
func fetchIntoKey[T any](ctx context.Context, sl *store.KeyedSlice[T], key, name string, logger core.Logger, call func(context.Context) (T, error)) {
	seq := sl.Begin(key)
	data, err := call(ctx)
	if err != nil {
		apiErr := core.NewAPIError(name, err)
		if sl.Reject(key, seq, apiErr.Message) {
			logger.Warn(fmt.Sprintf("%s[%s]: fetch failed: %v", name, key, err), err)
		}
		return
	}
	if !sl.Resolve(key, seq, data) {
		logger.Debug(fmt.Sprintf("%s[%s]: superseded response discarded", name, key))
	}
}
