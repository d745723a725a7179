package core

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNewAPIError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantMessage string
		wantStatus  int
	}{
		{
			name:        "network failures get a generic reachability message",
			err:         &NetworkError{Err: errors.New("dial tcp: connection refused")},
			wantMessage: "could not reach the server",
		},
		{
			name:        "http failures carry the server's message and status",
			err:         &HTTPError{Status: http.StatusForbidden, Message: "insufficient role"},
			wantMessage: "insufficient role",
			wantStatus:  http.StatusForbidden,
		},
		{
			name:        "malformed requests never leak internals",
			err:         &ConfigError{Err: errors.New("json: unsupported type")},
			wantMessage: "invalid request",
		},
		{
			name:        "unknown causes fall back to a catch-all",
			err:         errors.New("boom"),
			wantMessage: "something went wrong",
		},
		{
			name:        "wrapped causes are unwrapped first",
			err:         errors.Wrap(&HTTPError{Status: http.StatusNotFound, Message: "course not found"}, "fetching"),
			wantMessage: "course not found",
			wantStatus:  http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := NewAPIError("test.op", tt.err)
			assert.Equal(t, "test.op", apiErr.Name)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.Equal(t, tt.wantStatus, apiErr.Status)
		})
	}
}

func TestNewAPIErrorPassesThroughExisting(t *testing.T) {
	orig := &APIError{Name: "courses.list", Message: "already normalized"}
	assert.Same(t, orig, NewAPIError("other.op", error(orig)))
}

func TestEnvelopeErrMessage(t *testing.T) {
	env := Envelope[string]{}
	assert.Equal(t, "API returned unsuccessful status", env.ErrMessage())

	env.Message.SetValid("course not found")
	assert.Equal(t, "course not found", env.ErrMessage())
}
