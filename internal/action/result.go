package action

import (
	"context"
	"errors"

	"github.com/phrazzld/social-spark/internal/generation"
)

// ErrorKind classifies a failed Result so transports can pick a status code
// without parsing the message.
type ErrorKind string

const (
	KindNone          ErrorKind = ""
	KindConfiguration ErrorKind = "configuration"
	KindValidation    ErrorKind = "validation"
	KindProvider      ErrorKind = "provider"
	KindSchema        ErrorKind = "schema"
	KindTimeout       ErrorKind = "timeout"
	KindInternal      ErrorKind = "internal"
)

// Result is the outcome of a server action. Exactly one of Data and Error is
// populated.
type Result[T any] struct {
	Data  *T        `json:"data,omitempty"`
	Error string    `json:"error,omitempty"`
	Kind  ErrorKind `json:"-"`
}

// OK reports whether the action succeeded.
func (r Result[T]) OK() bool {
	return r.Data != nil
}

func success[T any](data *T) Result[T] {
	return Result[T]{Data: data}
}

func failure[T any](kind ErrorKind, msg string) Result[T] {
	return Result[T]{Error: msg, Kind: kind}
}

// classify maps a flow error onto an ErrorKind.
func classify(err error) ErrorKind {
	switch {
	case errors.Is(err, generation.ErrConfiguration):
		return KindConfiguration
	case errors.Is(err, generation.ErrInvalidRequest):
		return KindValidation
	case errors.Is(err, generation.ErrSchemaValidation):
		return KindSchema
	case errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	case errors.Is(err, generation.ErrProvider):
		return KindProvider
	default:
		return KindInternal
	}
}
