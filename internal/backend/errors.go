package backend

import (
	"fmt"

	"github.com/nikmy/flighthub/pkg/errors"
)

var (
	// ErrMalformed means the collaborator answered with something that is not
	// a recognizable envelope.
	ErrMalformed = errors.Error("malformed envelope")

	// ErrUnavailable is returned by CacheInfo when the endpoint answers with
	// a non-success status.
	ErrUnavailable = errors.Error("cache info unavailable")
)

// TransportError is a failure to get any response at all.
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	return e.Cause.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// EnvelopeError is a logical failure reported by the collaborator, either as
// an error envelope or as a non-success HTTP status. Message is empty when
// the collaborator did not say what went wrong.
type EnvelopeError struct {
	Status  int
	Message string
}

func (e *EnvelopeError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("collaborator failure (status %d)", e.Status)
	}
	return e.Message
}
