package teacher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterSearchSpansFields(t *testing.T) {
	teachers := []Teacher{
		{ID: "t1", Name: "Ada Chemistry", Department: "Physics"},
		{ID: "t2", Name: "Bob", Department: "Chemistry"},
		{ID: "t3", Name: "Cleo", Email: "cleo@uni.test", Department: "Mathematics"},
	}

	// "chem" hits t1 on name and t2 on department
	got := Filter(teachers, QueryFilter{Search: "chem"})
	assert.Len(t, got, 2)
	assert.Equal(t, "t1", got[0].ID)
	assert.Equal(t, "t2", got[1].ID)

	// email is searched too
	got = Filter(teachers, QueryFilter{Search: "uni.test"})
	assert.Len(t, got, 1)
	assert.Equal(t, "t3", got[0].ID)

	// AND with department excludes the name hit
	got = Filter(teachers, QueryFilter{Search: "chem", Department: "Chemistry"})
	assert.Len(t, got, 1)
	assert.Equal(t, "t2", got[0].ID)
}

func TestByDepartment(t *testing.T) {
	teachers := []Teacher{
		{ID: "t1", Department: "Physics"},
		{ID: "t2", Department: "Chemistry"},
		{ID: "t3", Department: "Physics"},
	}

	groups, keys := ByDepartment(teachers)

	assert.Equal(t, []string{"Physics", "Chemistry"}, keys)
	assert.Len(t, groups["Physics"], 2)
	assert.Equal(t, "t1", groups["Physics"][0].ID, "source order preserved")
	assert.Equal(t, "t3", groups["Physics"][1].ID)
}
