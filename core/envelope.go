package core

import "github.com/volatiletech/null/v8"

// Envelope is the backend's uniform response shape for list and detail
// endpoints: {status, data, message?}. status=false signals a logical
// failure regardless of the HTTP code and takes precedence over it.
type Envelope[T any] struct {
	Status  bool        `json:"status"`
	Data    T           `json:"data"`
	Message null.String `json:"message,omitempty"`
}

// MutationResult is the minimum shape every mutation endpoint responds with.
// Updated data, when echoed, is ignored: the truth comes from the next fetch.
type MutationResult struct {
	Status  bool        `json:"status"`
	Message null.String `json:"message,omitempty"`
}

// ErrMessage returns the envelope message or a generic fallback, for building
// an APIError out of a status=false response.
func (r MutationResult) ErrMessage() string {
	if r.Message.Valid && r.Message.String != "" {
		return r.Message.String
	}
	return "API returned unsuccessful status"
}

func (e Envelope[T]) ErrMessage() string {
	if e.Message.Valid && e.Message.String != "" {
		return e.Message.String
	}
	return "API returned unsuccessful status"
}
