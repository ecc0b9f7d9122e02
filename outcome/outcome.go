// Package outcome provides a two-track result container for railway-oriented code.
//
// An Outcome is either a success carrying a value together with informational
// warnings, or a failure carrying a list of errors. Domain-level failures travel
// as data through the combinators in this package (Map, Bind, Apply, Collect,
// MapFailure) instead of through panics or early returns.
package outcome

import "slices"

// Outcome is the result of an operation that either succeeded with a value and
// zero or more warnings, or failed with zero or more errors.
//
// The zero value is a failure without errors.
type Outcome[T, M any] struct {
	value    T
	messages []M
	ok       bool
}

// Success creates a successful outcome holding value and the given warnings.
func Success[T, M any](value T, warnings ...M) Outcome[T, M] {
	return Outcome[T, M]{value: value, messages: normalize(warnings), ok: true}
}

// Pure lifts a value into a successful outcome without warnings.
func Pure[T, M any](value T) Outcome[T, M] {
	return Outcome[T, M]{value: value, ok: true}
}

// Warn creates a successful outcome holding value and a single warning.
func Warn[T, M any](msg M, value T) Outcome[T, M] {
	return Outcome[T, M]{value: value, messages: []M{msg}, ok: true}
}

// Failure creates a failed outcome with the given errors.
func Failure[T, M any](errs ...M) Outcome[T, M] {
	return Outcome[T, M]{messages: normalize(errs)}
}

// Fail creates a failed outcome with a single error.
func Fail[T, M any](msg M) Outcome[T, M] {
	return Outcome[T, M]{messages: []M{msg}}
}

// FromResult bridges a conventional (value, error) pair into an outcome.
// A non-nil err becomes a single failure message produced by toMsg.
func FromResult[T, M any](value T, err error, toMsg func(error) M) Outcome[T, M] {
	if err != nil {
		return Fail[T](toMsg(err))
	}
	return Pure[T, M](value)
}

// IsSuccess reports whether the outcome is on the success track.
func (o Outcome[T, M]) IsSuccess() bool {
	return o.ok
}

// IsFailure reports whether the outcome is on the failure track.
func (o Outcome[T, M]) IsFailure() bool {
	return !o.ok
}

// Value returns the success value and true, or the zero value and false on failure.
func (o Outcome[T, M]) Value() (T, bool) {
	if !o.ok {
		var zero T
		return zero, false
	}
	return o.value, true
}

// Warnings returns the warnings of a successful outcome, nil on failure.
func (o Outcome[T, M]) Warnings() []M {
	if !o.ok {
		return nil
	}
	return slices.Clone(o.messages)
}

// Errors returns the errors of a failed outcome, nil on success.
func (o Outcome[T, M]) Errors() []M {
	if o.ok {
		return nil
	}
	return slices.Clone(o.messages)
}

// Messages returns the warnings on success or the errors on failure.
func (o Outcome[T, M]) Messages() []M {
	return slices.Clone(o.messages)
}

// normalize keeps empty message lists nil so that outcomes built through
// different paths compare equal.
func normalize[M any](msgs []M) []M {
	if len(msgs) == 0 {
		return nil
	}
	return slices.Clone(msgs)
}

// concat always allocates; stored message slices are never appended in place.
func concat[M any](a, b []M) []M {
	if len(a)+len(b) == 0 {
		return nil
	}
	out := make([]M, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
