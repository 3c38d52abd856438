// Package errdefs defines the error taxonomy shared by this library. Errors
// form a hierarchy of sentinels: matching a child with errors.Is also matches
// every one of its ancestors, so callers can branch on whole categories
// (logic vs runtime) or on specific kinds.
//
//	Logic
//	├── InvalidArgument
//	│   ├── ArgumentNil
//	│   └── ArgumentOutOfRange
//	├── InvalidOperation
//	├── NotImplemented
//	├── NotSupported
//	├── Precondition
//	├── Postcondition
//	└── Invariant
//	Runtime
//	├── IO
//	├── Timeout
//	├── Canceled
//	└── Resource
package errdefs

import (
	"strings"
)

var (
	ErrLogic   = kind("logic error", nil)
	ErrRuntime = kind("runtime error", nil)

	ErrInvalidArgument    = kind("invalid argument", ErrLogic)
	ErrArgumentNil        = kind("argument is nil", ErrInvalidArgument)
	ErrArgumentOutOfRange = kind("argument out of range", ErrInvalidArgument)
	ErrInvalidOperation   = kind("invalid operation", ErrLogic)
	ErrNotImplemented     = kind("not implemented", ErrLogic)
	ErrNotSupported       = kind("not supported", ErrLogic)
	ErrPrecondition       = kind("precondition violated", ErrLogic)
	ErrPostcondition      = kind("postcondition violated", ErrLogic)
	ErrInvariant          = kind("invariant violated", ErrLogic)

	ErrIO       = kind("i/o error", ErrRuntime)
	ErrTimeout  = kind("operation timed out", ErrRuntime)
	ErrCanceled = kind("operation canceled", ErrRuntime)
	ErrResource = kind("resource exhausted", ErrRuntime)
)

// Joiner separates the hops of a message chain.
const Joiner = "\n\t-> "

// kindError is a sentinel with a parent category.
type kindError struct {
	msg    string
	parent error
}

func (e *kindError) Error() string {
	return e.msg
}

func (e *kindError) Unwrap() error {
	return e.parent
}

func kind(msg string, parent error) error {
	return &kindError{msg: msg, parent: parent}
}

// New returns an error of the given kind carrying the given messages as a
// chain. With no messages it returns the kind itself.
func New(errKind error, messages ...string) error {
	if len(messages) == 0 {
		return errKind
	}
	return &chainedError{
		msg: strings.Join(messages, Joiner),
		err: errKind,
	}
}

// Wrap prepends one message hop to an existing error, preserving its identity
// for errors.Is and errors.As.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &chainedError{
		msg: message,
		err: err,
	}
}

// chainedError prefixes a wrapped error with a message chain.
type chainedError struct {
	msg string
	err error
}

func (e *chainedError) Error() string {
	return e.msg + Joiner + e.err.Error()
}

func (e *chainedError) Unwrap() error {
	return e.err
}
