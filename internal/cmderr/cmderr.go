// Package cmderr defines the error-kind taxonomy used throughout the
// benchmarking pipeline: UserInput, SystemSpawn, CommandFailure, Export,
// and Statistics. The kind is a field of Error, which wraps its cause
// (built with github.com/pkg/errors) so callers can inspect .Cause() while
// the CLI layer only needs Error() for the user-visible "Error: …" line.
package cmderr

import "github.com/pkg/errors"

// Kind classifies an error for propagation-policy purposes (spec §7).
type Kind int

const (
	UserInput Kind = iota
	SystemSpawn
	CommandFailure
	Export
	Statistics
)

func (k Kind) String() string {
	switch k {
	case UserInput:
		return "user input"
	case SystemSpawn:
		return "spawn"
	case CommandFailure:
		return "command failure"
	case Export:
		return "export"
	case Statistics:
		return "statistics"
	default:
		return "unknown"
	}
}

// Error is a kind-tagged error.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string { return e.Err.Error() }
func (e *Error) Cause() error  { return e.Err }
func (e *Error) Unwrap() error { return e.Err }

// New wraps msg as a kind-tagged error.
func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Err: errors.New(msg)}
}

// Wrap tags an existing error with a kind, preserving its cause chain.
func Wrap(kind Kind, err error, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: errors.Wrap(err, msg)}
}

// Is reports whether err (or something it wraps) carries the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	for err != nil {
		if ce, ok := err.(*Error); ok {
			e = ce
			break
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return e != nil && e.Kind == kind
}
