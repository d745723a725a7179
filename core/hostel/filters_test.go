package hostel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortRoomsNumericSuffix(t *testing.T) {
	rooms := []Room{
		{Number: "A10", Block: "A"},
		{Number: "B1", Block: "B"},
		{Number: "A2", Block: "A"},
		{Number: "A101", Block: "A"},
	}

	sorted := SortRooms(rooms)

	numbers := make([]string, len(sorted))
	for i, r := range sorted {
		numbers[i] = r.Number
	}
	// lexicographic order would put A10 before A2
	assert.Equal(t, []string{"A2", "A10", "A101", "B1"}, numbers)
	assert.Equal(t, "A10", rooms[0].Number, "input is not reordered")
}

func TestRoomOrdinal(t *testing.T) {
	assert.Equal(t, 101, roomOrdinal("A101"))
	assert.Equal(t, 2, roomOrdinal("A-2"))
	assert.Equal(t, 0, roomOrdinal("Annex"))
}

func TestFilter(t *testing.T) {
	rooms := []Room{
		{ID: "r1", Number: "A1", Block: "A", Capacity: 2, Occupants: []string{"st1", "st2"}},
		{ID: "r2", Number: "A2", Block: "A", Capacity: 2, Occupants: []string{"st3"}},
		{ID: "r3", Number: "B1", Block: "B", Capacity: 4},
	}

	tests := []struct {
		name    string
		filter  QueryFilter
		wantIDs []string
	}{
		{name: "all", filter: QueryFilter{}, wantIDs: []string{"r1", "r2", "r3"}},
		{name: "block is case-insensitive", filter: QueryFilter{Block: "a"}, wantIDs: []string{"r1", "r2"}},
		{name: "only available", filter: QueryFilter{OnlyAvailable: true}, wantIDs: []string{"r2", "r3"}},
		{name: "block AND available", filter: QueryFilter{Block: "A", OnlyAvailable: true}, wantIDs: []string{"r2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(rooms, tt.filter)
			ids := make([]string, 0, len(got))
			for _, r := range got {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestOccupancy(t *testing.T) {
	rooms := []Room{
		{Capacity: 2, Occupants: []string{"st1", "st2"}},
		{Capacity: 4, Occupants: []string{"st3"}},
	}

	st := Occupancy(rooms)
	assert.Equal(t, OccupancyStats{Rooms: 2, Capacity: 6, Occupied: 3, Free: 3}, st)
}

func TestRoomFree(t *testing.T) {
	// over-allocated rooms report zero free beds rather than a negative count
	r := Room{Capacity: 2, Occupants: []string{"st1", "st2", "st3"}}
	assert.Equal(t, 0, r.Free())
}
