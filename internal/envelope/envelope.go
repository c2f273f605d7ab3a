// Package envelope is the uniform result shape handed to the caller of
// every store operation.
package envelope

import "github.com/fekuna/omnipos-local-store/internal/apperror"

type Envelope struct {
	Success bool          `json:"success"`
	Data    any           `json:"data,omitempty"`
	Error   string        `json:"error,omitempty"`
	Kind    apperror.Kind `json:"kind,omitempty"`
}

func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

func Fail(err error) Envelope {
	msg := err.Error()
	if msg == "" {
		msg = "operation failed"
	}
	return Envelope{Success: false, Error: msg, Kind: apperror.KindOf(err)}
}

// From builds an envelope from a (value, error) pair.
func From(data any, err error) Envelope {
	if err != nil {
		return Fail(err)
	}
	return OK(data)
}
