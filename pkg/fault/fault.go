package fault

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"
)

// Kind classifies an application failure.
type Kind string

const (
	KindInvalidInput Kind = "invalid_input"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindInternal     Kind = "internal"
)

// Fault is the error type shared by services and transports.
type Fault struct {
	kind    Kind
	message string
	cause   error
}

// Option customises a Fault during construction.
type Option func(*Fault)

// WithCause attaches the underlying error for errors.Is/As chains.
func WithCause(err error) Option {
	return func(f *Fault) {
		f.cause = err
	}
}

// New builds a Fault of the given kind.
func New(kind Kind, message string, opts ...Option) *Fault {
	if message == "" {
		message = string(kind)
	}
	f := &Fault{kind: kind, message: message}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// InvalidInput marks user-supplied data that failed validation.
func InvalidInput(message string, opts ...Option) *Fault {
	return New(KindInvalidInput, message, opts...)
}

// NotFound marks a lookup miss.
func NotFound(message string, opts ...Option) *Fault {
	return New(KindNotFound, message, opts...)
}

// Conflict marks a state collision.
func Conflict(message string, opts ...Option) *Fault {
	return New(KindConflict, message, opts...)
}

// Internal marks an unexpected failure, typically a store error.
func Internal(message string, opts ...Option) *Fault {
	return New(KindInternal, message, opts...)
}

func (f *Fault) Error() string {
	if f == nil {
		return "<nil>"
	}
	if f.cause != nil {
		return fmt.Sprintf("%s: %v", f.message, f.cause)
	}
	return f.message
}

func (f *Fault) Unwrap() error {
	if f == nil {
		return nil
	}
	return f.cause
}

// Kind returns the failure category.
func (f *Fault) Kind() Kind {
	if f == nil {
		return KindInternal
	}
	return f.kind
}

// Message returns the user-facing text without the cause chain.
func (f *Fault) Message() string {
	if f == nil {
		return ""
	}
	return f.message
}

// StatusCode maps the kind onto an HTTP status.
func (f *Fault) StatusCode() int {
	switch f.Kind() {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// GRPCCode maps the kind onto a gRPC status code.
func (f *Fault) GRPCCode() codes.Code {
	switch f.Kind() {
	case KindInvalidInput:
		return codes.InvalidArgument
	case KindNotFound:
		return codes.NotFound
	case KindConflict:
		return codes.AlreadyExists
	default:
		return codes.Internal
	}
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	var f *Fault
	return errors.As(err, &f) && f.Kind() == kind
}

// From coerces any error into a Fault, wrapping unknown values as internal.
func From(err error) *Fault {
	if err == nil {
		return nil
	}
	var f *Fault
	if errors.As(err, &f) {
		return f
	}
	return Internal("internal error", WithCause(err))
}
