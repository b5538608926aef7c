// Package stub provides canned behaviors for matched calls and the fluent
// handle used to attach them.
package stub

import "github.com/mimiclib/mimic/pkg/invocation"

// Answer produces the outcome of a stubbed call: either an ordered list of
// return values or a raised error. A raised error travels through the
// method's trailing error result when the signature has one, and panics out
// of the mock otherwise.
type Answer interface {
	Answer(inv *invocation.Invocation) ([]any, error)
}

// Returns answers every matched call with the same fixed values. Missing
// trailing values and nil slots become zero values of the corresponding
// result types.
type Returns struct {
	Values []any
}

// Answer implements Answer
func (r Returns) Answer(*invocation.Invocation) ([]any, error) {
	return r.Values, nil
}

// Raises simulates a failing call. The error propagates to the caller of
// the mock exactly as if the real implementation had raised it; it is not
// wrapped.
type Raises struct {
	Err error
}

// Answer implements Answer
func (r Raises) Answer(*invocation.Invocation) ([]any, error) {
	return nil, r.Err
}

// AnswerFunc adapts an ordinary function into an Answer, for stubs whose
// outcome depends on the actual invocation.
type AnswerFunc func(inv *invocation.Invocation) ([]any, error)

// Answer implements Answer
func (f AnswerFunc) Answer(inv *invocation.Invocation) ([]any, error) {
	return f(inv)
}
