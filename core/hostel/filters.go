package hostel

import (
	"sort"
	"strconv"
	"strings"
)

// QueryFilter applies an AND operation on its non-empty fields.
type QueryFilter struct {
	Block         string
	OnlyAvailable bool
}

func (f QueryFilter) Match(r Room) bool {
	if f.Block != "" && !strings.EqualFold(r.Block, f.Block) {
		return false
	}
	if f.OnlyAvailable && r.Free() == 0 {
		return false
	}
	return true
}

func Filter(rooms []Room, f QueryFilter) []Room {
	out := make([]Room, 0, len(rooms))
	for _, r := range rooms {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

// roomOrdinal extracts the numeric suffix of an alphanumeric room number so
// that A10 sorts after A2. Non-numeric identifiers compare as 0.
func roomOrdinal(number string) int {
	i := len(number)
	for i > 0 && number[i-1] >= '0' && number[i-1] <= '9' {
		i--
	}
	n, err := strconv.Atoi(number[i:])
	if err != nil {
		return 0
	}
	return n
}

// SortRooms orders rooms by block, then by the numeric suffix of the room
// number. Returns a new slice; the input is untouched.
func SortRooms(rooms []Room) []Room {
	out := make([]Room, len(rooms))
	copy(out, rooms)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Block != out[j].Block {
			return out[i].Block < out[j].Block
		}
		return roomOrdinal(out[i].Number) < roomOrdinal(out[j].Number)
	})
	return out
}

// OccupancyStats aggregates capacity over the given rooms. Pass the full
// slice for hostel-wide totals or a filtered view for per-block figures.
type OccupancyStats struct {
	Rooms    int
	Capacity int
	Occupied int
	Free     int
}

func Occupancy(rooms []Room) OccupancyStats {
	var st OccupancyStats
	st.Rooms = len(rooms)
	for _, r := range rooms {
		st.Capacity += r.Capacity
		st.Occupied += len(r.Occupants)
		st.Free += r.Free()
	}
	return st
}
