package api

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned before any network activity when the
// submitted text is empty or whitespace.
var ErrEmptyInput = errors.New("no message text provided")

// UnreachableError wraps a transport-level failure: the service could
// not be reached at all.
type UnreachableError struct {
	Err error
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("analysis service unreachable: %v", e.Err)
}

func (e *UnreachableError) Unwrap() error {
	return e.Err
}

// RemoteError wraps a non-success HTTP status or an unparsable body.
type RemoteError struct {
	Err    error
	Status int
}

func (e *RemoteError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("analysis service error: %v", e.Err)
	}
	return fmt.Sprintf("analysis service returned HTTP %d", e.Status)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// UserMessage renders an error as the text shown in toasts and the
// inline banner.
func UserMessage(op string, err error) string {
	var unreachable *UnreachableError
	switch {
	case errors.Is(err, ErrEmptyInput):
		return "Please paste SMS / statement text first."
	case errors.As(err, &unreachable):
		return "Cannot reach the analysis service. Check that it is running and allows cross-origin calls."
	default:
		return fmt.Sprintf("%s failed: %v", op, err)
	}
}
