package timepred

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind tags the kind of failure an Error represents. The engine
// itself has no user-visible error channel (spec: unsatisfiable
// predicates and latent TimeData simply resolve to "no resolution"),
// so ErrorKindZone is, in practice, the only kind ever constructed.
type ErrorKind string

// ErrorKindZone marks a failure to resolve an IANA time zone name.
const ErrorKindZone ErrorKind = "zone"

// Error is the engine's error type, tagged with a kind so callers can
// distinguish zone-resolution failures from any future fallible
// boundary without string matching.
type Error struct {
	Kind ErrorKind
	msg  string
	err  error
}

func (e *Error) Error() string {
	return e.msg
}

// Unwrap exposes the wrapped cause for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.err
}

func zoneError(name string, cause error) *Error {
	return &Error{
		Kind: ErrorKindZone,
		msg:  fmt.Sprintf("timepred: resolve zone %q: %s", name, cause),
		err:  errors.Wrapf(cause, "resolve zone %q", name),
	}
}
