package records

import "errors"

// Client-facing messages. Causes are logged, never rendered.
const (
	MsgNotFound    = "No records found for this user"
	MsgServerError = "Server error"
)

type Kind uint8

const (
	KindNotFound Kind = iota + 1
	KindStorage
	KindInvalid
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindStorage:
		return "storage_error"
	case KindInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Error is returned by Service operations. Message is safe to show to clients.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so errors.Is(err, ErrNotFound) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrNotFound = &Error{Kind: KindNotFound, Message: MsgNotFound}
	ErrStorage  = &Error{Kind: KindStorage, Message: MsgServerError}
	ErrInvalid  = &Error{Kind: KindInvalid, Message: "Invalid submission"}
)

// KindOf returns the kind of err, or 0 when err is not a service error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
