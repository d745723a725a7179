package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyedSliceIndependentKeys(t *testing.T) {
	sl := NewKeyedSlice[[]string](5 * time.Minute)

	sl.Resolve("2025", sl.Begin("2025"), []string{"p1"})
	sl.Reject("2026", sl.Begin("2026"), "boom")

	snap25 := sl.Snapshot("2025")
	assert.Equal(t, []string{"p1"}, snap25.Data)
	assert.Empty(t, snap25.Err)
	assert.False(t, sl.IsStale("2025"))

	snap26 := sl.Snapshot("2026")
	assert.False(t, snap26.HasData)
	assert.Equal(t, "boom", snap26.Err)
	assert.True(t, sl.IsStale("2026"), "a failed fetch never marks a key fresh")

	assert.True(t, sl.IsStale("2027"), "unknown keys are stale by definition")
	assert.ElementsMatch(t, []string{"2025", "2026"}, sl.Keys())
}

func TestKeyedSliceSequenceGuardPerKey(t *testing.T) {
	sl := NewKeyedSlice[string](5 * time.Minute)

	seqA := sl.Begin("k")
	seqB := sl.Begin("k")
	assert.True(t, sl.Resolve("k", seqB, "newer"))
	assert.False(t, sl.Resolve("k", seqA, "older"))
	assert.Equal(t, "newer", sl.Snapshot("k").Data)
}

func TestKeyedSliceInvalidateAndReset(t *testing.T) {
	sl := NewKeyedSlice[int](5 * time.Minute)
	sl.Resolve("a", sl.Begin("a"), 1)
	sl.Resolve("b", sl.Begin("b"), 2)

	sl.Invalidate("a")
	assert.True(t, sl.IsStale("a"))
	assert.False(t, sl.IsStale("b"))
	assert.True(t, sl.Snapshot("a").HasData, "invalidate keeps data displayed")

	sl.InvalidateAll()
	assert.True(t, sl.IsStale("b"))

	inflight := sl.Begin("a")
	sl.Reset()
	for _, key := range []string{"a", "b"} {
		snap := sl.Snapshot(key)
		assert.False(t, snap.HasData, key)
		assert.Empty(t, snap.Err, key)
		assert.True(t, snap.LastFetched.IsZero(), key)
	}
	assert.False(t, sl.Resolve("a", inflight, 9), "pre-reset fetch must be discarded")
}
