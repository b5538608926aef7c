// Package matcher provides the argument matching capability used to pair
// intercepted calls with stubs and verification targets.
package matcher

import (
	"fmt"
	"reflect"
)

// Matcher decides whether a single actual argument satisfies a pattern.
// Implementations must be pure: no side effects, same answer for the same
// input. Anything implementing the interface can be used; the built-in
// variants below cover the common cases.
type Matcher interface {
	// Matches reports whether the actual argument satisfies the pattern.
	Matches(actual any) bool

	// String renders the pattern for failure messages.
	String() string
}

// Equals matches an argument that is deeply equal to the wanted value.
// Value equality rather than pointer identity: for Go strings, structs and
// slices identity comparison would make every stub unmatchable.
type Equals struct {
	Wanted any
}

// Matches implements Matcher
func (m Equals) Matches(actual any) bool {
	return reflect.DeepEqual(m.Wanted, actual)
}

// String implements Matcher
func (m Equals) String() string {
	return fmt.Sprintf("equals(%v)", m.Wanted)
}

// Any matches every argument.
type Any struct{}

// Matches implements Matcher
func (Any) Matches(any) bool {
	return true
}

// String implements Matcher
func (Any) String() string {
	return "<any>"
}

// AnyOfType matches every argument assignable to a given type. A nil Type
// behaves like Any.
type AnyOfType struct {
	Type reflect.Type
}

// Matches implements Matcher
func (m AnyOfType) Matches(actual any) bool {
	if m.Type == nil || actual == nil {
		return true
	}
	return reflect.TypeOf(actual).AssignableTo(m.Type)
}

// String implements Matcher
func (m AnyOfType) String() string {
	if m.Type == nil {
		return "<any>"
	}
	return fmt.Sprintf("<any %s>", m.Type)
}

// Func adapts an ordinary predicate into a Matcher. Desc is used in failure
// messages; it may be empty.
type Func struct {
	Fn   func(actual any) bool
	Desc string
}

// Matches implements Matcher
func (m Func) Matches(actual any) bool {
	return m.Fn(actual)
}

// String implements Matcher
func (m Func) String() string {
	if m.Desc == "" {
		return "<matches func>"
	}
	return m.Desc
}
