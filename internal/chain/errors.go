// Package chain defines the node-facing contracts shared by the scanning
// services and the typed error taxonomy their retry policies rely on.
package chain

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a block, identity, or address the node does not know.
var ErrNotFound = errors.New("not found")

// TransientError wraps a failure worth retrying: timeouts, connection
// resets, a node that is still warming up.
type TransientError struct {
	Op  string
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("%s: transient: %v", e.Op, e.Err)
}

func (e *TransientError) Unwrap() error { return e.Err }

// PermanentError wraps a failure that retrying cannot fix: an RPC-level
// rejection or a response the client could not decode.
type PermanentError struct {
	Op  string
	Err error
}

func (e *PermanentError) Error() string {
	return fmt.Sprintf("%s: permanent: %v", e.Op, e.Err)
}

func (e *PermanentError) Unwrap() error { return e.Err }

// IsTransient reports whether err is retryable.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}
