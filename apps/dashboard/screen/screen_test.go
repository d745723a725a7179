package screen

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campusdesk/campusdesk/core"
	"github.com/campusdesk/campusdesk/core/auth"
	"github.com/campusdesk/campusdesk/core/course"
	"github.com/campusdesk/campusdesk/core/exam"
	"github.com/campusdesk/campusdesk/core/finance"
	"github.com/campusdesk/campusdesk/core/hostel"
	"github.com/campusdesk/campusdesk/core/student"
	"github.com/campusdesk/campusdesk/core/teacher"
	"github.com/campusdesk/campusdesk/services/mockapi"
	"github.com/campusdesk/campusdesk/services/rest"
	"github.com/campusdesk/campusdesk/store"
	testutil "github.com/campusdesk/campusdesk/tests"
)

// countingHandler records how often each path is hit, so tests can assert
// that fresh data is served from the cache and mutations only re-fetch what
// they changed.
type countingHandler struct {
	http.Handler

	mu   sync.Mutex
	hits map[string]int
}

func (h *countingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	h.hits[r.URL.Path]++
	h.mu.Unlock()
	h.Handler.ServeHTTP(w, r)
}

func (h *countingHandler) count(path string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.hits[path]
}

// testEnv wires the full stack against an embedded mock backend: store,
// shared client and every fetcher, the way main does it.
type testEnv struct {
	st      *store.Store
	logger  *testutil.Logger
	client  *rest.Client
	backend *countingHandler

	authAPI    auth.API
	courseAPI  course.API
	studentAPI student.API
	teacherAPI teacher.API
	examAPI    exam.API
	financeAPI finance.API
	hostelAPI  hostel.API
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	backend := &countingHandler{
		Handler: mockapi.NewServer(&mockapi.Options{DisableReqLogs: true}),
		hits:    map[string]int{},
	}
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	conf := testutil.NewConfig(t)
	conf.APIBaseURL = srv.URL
	logger := testutil.NewLogger()

	client, err := rest.NewClient(conf, logger)
	assert.NoError(t, err)
	validate, translator := core.NewValidator()

	return &testEnv{
		st:      store.New(conf),
		logger:  logger,
		client:  client,
		backend: backend,

		authAPI:    rest.NewAuthAPI(client, validate, translator),
		courseAPI:  rest.NewCourseAPI(client, validate, translator),
		studentAPI: rest.NewStudentAPI(client),
		teacherAPI: rest.NewTeacherAPI(client),
		examAPI:    rest.NewExamAPI(client),
		financeAPI: rest.NewFinanceAPI(client),
		hostelAPI:  rest.NewHostelAPI(client, validate, translator),
	}
}
