package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type validatedPayload struct {
	Username string `json:"username" validate:"required,alphanum_"`
	Room     string `json:"room" validate:"omitempty,roomnum"`
}

func TestValidateStruct(t *testing.T) {
	validate, translator := NewValidator()

	tests := []struct {
		name      string
		payload   validatedPayload
		wantField string
		wantError string
	}{
		{name: "valid", payload: validatedPayload{Username: "admin_1", Room: "A101"}},
		{name: "valid dashed room", payload: validatedPayload{Username: "admin", Room: "A-101"}},
		{
			name:      "missing required field",
			payload:   validatedPayload{Room: "A101"},
			wantField: "username",
			wantError: "this field is required",
		},
		{
			name:      "bad username characters",
			payload:   validatedPayload{Username: "admin!"},
			wantField: "username",
			wantError: "only alphanumeric characters and underscores are allowed",
		},
		{
			name:      "room number without block letter",
			payload:   validatedPayload{Username: "admin", Room: "101"},
			wantField: "room",
			wantError: "must be a block letter followed by a room number, e.g. A101",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(validate, translator, tt.payload)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			vErr, ok := err.(*ValidationError)
			assert.True(t, ok)
			assert.Len(t, vErr.Fields, 1)
			assert.Equal(t, tt.wantField, vErr.Fields[0].Field)
			assert.Equal(t, tt.wantError, vErr.Fields[0].Error)
		})
	}
}
