package screen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campusdesk/campusdesk/core"
	"github.com/campusdesk/campusdesk/core/hostel"
)

func TestHostelViewSortedByBlockAndNumber(t *testing.T) {
	env := newTestEnv(t)
	s := NewHostel(env.st, env.hostelAPI, env.logger)

	s.Load(context.Background(), false)
	view, _, _, snap := s.View(hostel.QueryFilter{})

	assert.True(t, snap.HasData)
	numbers := make([]string, len(view))
	for i, r := range view {
		numbers[i] = r.Number
	}
	assert.Equal(t, []string{"A2", "A10", "A101", "B1"}, numbers)
}

// allocating a bed re-fetches the rooms slice and nothing else.
func TestHostelAllocateRefetchesRooms(t *testing.T) {
	env := newTestEnv(t)
	s := NewHostel(env.st, env.hostelAPI, env.logger)
	ctx := context.Background()

	s.Load(ctx, false)
	_, _, before, _ := s.View(hostel.QueryFilter{})

	err := s.Allocate(ctx, hostel.AllocationInput{RoomNumber: "A2", StudentID: "st-new"})
	assert.NoError(t, err)

	_, _, after, _ := s.View(hostel.QueryFilter{})
	assert.Equal(t, before.Occupied+1, after.Occupied)
	assert.Equal(t, 2, env.backend.count("/hostel/rooms"))
	assert.Equal(t, 0, env.backend.count("/students"))
}

func TestHostelAllocateValidatesRoomNumber(t *testing.T) {
	env := newTestEnv(t)
	s := NewHostel(env.st, env.hostelAPI, env.logger)
	ctx := context.Background()

	s.Load(ctx, false)
	err := s.Allocate(ctx, hostel.AllocationInput{RoomNumber: "101A", StudentID: "st-new"})

	vErr, ok := err.(*core.ValidationError)
	assert.True(t, ok)
	assert.Equal(t, "roomNumber", vErr.Fields[0].Field)
	assert.Equal(t, 1, env.backend.count("/hostel/rooms"), "rejected input never reaches the backend")
}

func TestHostelVacate(t *testing.T) {
	env := newTestEnv(t)
	s := NewHostel(env.st, env.hostelAPI, env.logger)
	ctx := context.Background()

	s.Load(ctx, false)
	view, _, _, _ := s.View(hostel.QueryFilter{Block: "A"})
	var occupied hostel.Room
	for _, r := range view {
		if len(r.Occupants) > 0 {
			occupied = r
		}
	}
	assert.NotEmpty(t, occupied.ID)

	assert.NoError(t, s.Vacate(ctx, occupied.ID, occupied.Occupants[0]))

	_, _, stats, _ := s.View(hostel.QueryFilter{})
	assert.Equal(t, 0, stats.Occupied)
}
