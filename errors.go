package guidgen

import "errors"

var (
	// ErrInvalidFormat indicates that the UUID string format is invalid
	ErrInvalidFormat = errors.New("guidgen: invalid UUID format")

	// ErrInvalidLength indicates that the UUID byte slice has incorrect length
	ErrInvalidLength = errors.New("guidgen: invalid UUID length (expected 16 bytes)")

	// ErrInvalidArgument indicates a missing or malformed input, such as a nil
	// name or an Org domain request without a local ID
	ErrInvalidArgument = errors.New("guidgen: invalid argument")

	// ErrEntropyUnavailable indicates that the random source failed
	ErrEntropyUnavailable = errors.New("guidgen: entropy source unavailable")

	// ErrClockUnavailable indicates that the time source failed
	ErrClockUnavailable = errors.New("guidgen: clock unavailable")

	// ErrUnsupportedScheme indicates that the requested version is excluded from this build
	ErrUnsupportedScheme = errors.New("guidgen: unsupported UUID scheme")

	// ErrStateNotFound is returned by a StateStore that holds no saved state yet
	ErrStateNotFound = errors.New("guidgen: generator state not found")
)

// Error describes a failed generation call. Kind is one of the sentinel
// errors above, so errors.Is(err, ErrEntropyUnavailable) and friends work;
// Err keeps the collaborator's original failure, if any.
type Error struct {
	Op   string
	Kind error
	Err  error
}

// Error formats the error as "op: kind: cause".
func (e *Error) Error() string {
	msg := e.Kind.Error()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newError(op string, kind, cause error) error {
	return &Error{Op: op, Kind: kind, Err: cause}
}
