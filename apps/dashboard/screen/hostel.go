package screen

import (
	"context"

	"github.com/campusdesk/campusdesk/core"
	"github.com/campusdesk/campusdesk/core/hostel"
	"github.com/campusdesk/campusdesk/store"
)

type Hostel struct {
	st     *store.Store
	api    hostel.API
	logger core.Logger
}

func NewHostel(st *store.Store, api hostel.API, logger core.Logger) *Hostel {
	return &Hostel{st: st, api: api, logger: logger}
}

func (s *Hostel) Load(ctx context.Context, force bool) {
	if force {
		s.st.Rooms.Invalidate()
	}
	if !s.st.Rooms.IsStale() {
		return
	}
	fetchInto(ctx, s.st.Rooms, "hostel.listRooms", s.logger, s.api.ListRooms)
}

// Allocate puts a student in a room; on success only the rooms slice is
// re-fetched, since that is the only truth the mutation changed.
func (s *Hostel) Allocate(ctx context.Context, in hostel.AllocationInput) error {
	if err := s.api.Allocate(ctx, in); err != nil {
		return err
	}
	s.refetchRooms(ctx)
	return nil
}

func (s *Hostel) Vacate(ctx context.Context, roomID, studentID string) error {
	if err := s.api.Vacate(ctx, roomID, studentID); err != nil {
		return err
	}
	s.refetchRooms(ctx)
	return nil
}

func (s *Hostel) refetchRooms(ctx context.Context) {
	s.st.Rooms.Invalidate()
	fetchInto(ctx, s.st.Rooms, "hostel.listRooms", s.logger, s.api.ListRooms)
}

// View returns the filtered rooms in display order (block, then numeric room
// suffix) plus occupancy for the filtered view and for the whole hostel.
func (s *Hostel) View(f hostel.QueryFilter) ([]hostel.Room, hostel.OccupancyStats, hostel.OccupancyStats, store.View[[]hostel.Room]) {
	snap := s.st.Rooms.Snapshot()
	view := hostel.SortRooms(hostel.Filter(snap.Data, f))
	return view, hostel.Occupancy(view), hostel.Occupancy(snap.Data), snap
}
