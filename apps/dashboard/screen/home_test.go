package screen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newHomeScreen(env *testEnv) *Home {
	return NewHome(env.st, env.logger,
		env.studentAPI, env.teacherAPI, env.courseAPI, env.examAPI, env.financeAPI, env.hostelAPI)
}

func TestHomeLoadAndStats(t *testing.T) {
	env := newTestEnv(t)
	s := newHomeScreen(env)

	s.Load(context.Background(), false)
	stats := s.View()

	assert.Equal(t, 2, stats.Students)
	assert.Equal(t, 2, stats.Teachers)
	assert.Equal(t, 2, stats.Courses)
	assert.Equal(t, 2, stats.FormsTotal)
	assert.Equal(t, 1, stats.FormsVerified)
	assert.Equal(t, 1200.0, stats.FeesCollected, "only settled payments count")
	assert.Equal(t, 4, stats.Occupancy.Rooms)
	assert.Equal(t, 8, stats.Occupancy.Capacity)
	assert.Equal(t, 1, stats.Occupancy.Occupied)
}

// the dashboard shares slices with the per-domain screens; loading it first
// means those screens open warm without another round trip.
func TestHomeWarmsSharedSlices(t *testing.T) {
	env := newTestEnv(t)
	home := newHomeScreen(env)
	courses := NewCourses(env.st, env.courseAPI, env.logger)
	ctx := context.Background()

	home.Load(ctx, false)
	assert.Equal(t, 1, env.backend.count("/courses"))

	courses.Load(ctx, false)
	assert.Equal(t, 1, env.backend.count("/courses"), "still fresh from the dashboard load")
}
