package student

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testStudents = []Student{
	{ID: "st1", Name: "Carol Mwangi", Email: "carol@uni.test", Department: "Computer Science", CourseID: "c1", CourseName: "BSc CS", Semester: 2, Year: 1},
	{ID: "st2", Name: "David Okoro", Email: "david@uni.test", Department: "Chemistry", CourseID: "c2", CourseName: "BSc Chemistry", Semester: 4, Year: 2},
	{ID: "st3", Name: "Erin Carolan", Email: "erin@uni.test", Department: "Chemistry", CourseID: "c2", CourseName: "BSc Chemistry", Semester: 2, Year: 1},
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name    string
		filter  QueryFilter
		wantIDs []string
	}{
		{name: "empty matches all", filter: QueryFilter{}, wantIDs: []string{"st1", "st2", "st3"}},
		{name: "search name or email", filter: QueryFilter{Search: "carol"}, wantIDs: []string{"st1", "st3"}},
		{name: "zero semester ignored", filter: QueryFilter{Department: "Chemistry"}, wantIDs: []string{"st2", "st3"}},
		{name: "semester ANDs with department", filter: QueryFilter{Department: "Chemistry", Semester: 2}, wantIDs: []string{"st3"}},
		{name: "course and year", filter: QueryFilter{CourseID: "c2", Year: 2}, wantIDs: []string{"st2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(testStudents, tt.filter)
			ids := make([]string, 0, len(got))
			for _, st := range got {
				ids = append(ids, st.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestByCourse(t *testing.T) {
	groups, keys := ByCourse(testStudents)

	assert.Equal(t, []string{"BSc CS", "BSc Chemistry"}, keys)
	assert.Len(t, groups["BSc Chemistry"], 2)
	assert.Equal(t, "st2", groups["BSc Chemistry"][0].ID)
}
