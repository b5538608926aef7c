// Package invocation models one intercepted call on a mock and the pattern
// used to match calls against stubs and verification targets.
package invocation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mimiclib/mimic/pkg/matcher"
	"github.com/mimiclib/mimic/pkg/mimicerr"
)

// Method identifies one mockable method: the struct type declaring the func
// field, the field name, and the func signature. Two Methods refer to the
// same method iff Owner and Name are equal.
type Method struct {
	Owner reflect.Type
	Name  string
	Type  reflect.Type
}

// Equal reports whether both values identify the same method.
func (m Method) Equal(other Method) bool {
	return m.Owner == other.Owner && m.Name == other.Name
}

func (m Method) String() string {
	return fmt.Sprintf("%s.%s", m.Owner.Name(), m.Name)
}

// Invocation is an immutable record of one call: which mock instance, which
// method, and the ordered actual arguments.
type Invocation struct {
	mock   any
	method Method
	args   []any
}

// New creates an Invocation. The argument slice is copied so the record
// stays immutable even if the caller reuses its backing array.
func New(mock any, method Method, args []any) *Invocation {
	copied := make([]any, len(args))
	copy(copied, args)
	return &Invocation{
		mock:   mock,
		method: method,
		args:   copied,
	}
}

// Mock returns the mock instance the call was made on.
func (inv *Invocation) Mock() any {
	return inv.mock
}

// Method returns the method descriptor of the call.
func (inv *Invocation) Method() Method {
	return inv.method
}

// Args returns the ordered actual arguments of the call.
func (inv *Invocation) Args() []any {
	copied := make([]any, len(inv.args))
	copy(copied, inv.args)
	return copied
}

func (inv *Invocation) String() string {
	parts := make([]string, len(inv.args))
	for i, a := range inv.args {
		parts[i] = fmt.Sprintf("%v", a)
	}
	return fmt.Sprintf("%s(%s)", inv.method, strings.Join(parts, ", "))
}

// Matcher pairs one Invocation with a per-argument list of matchers, one
// matcher per argument position.
type Matcher struct {
	invocation *Invocation
	matchers   []matcher.Matcher
}

// NewMatcher builds a Matcher from an invocation and the matchers drained
// from the progress context. With no explicit matchers, one Equals matcher
// per actual argument is synthesized, so the pattern matches exactly the
// arguments that were passed. Explicit matchers must cover every argument
// position; a partial list is a usage error, never guessed around.
func NewMatcher(inv *Invocation, matchers []matcher.Matcher) (*Matcher, error) {
	if len(matchers) == 0 {
		matchers = make([]matcher.Matcher, len(inv.args))
		for i, arg := range inv.args {
			matchers[i] = matcher.Equals{Wanted: arg}
		}
	} else if len(matchers) != len(inv.args) {
		return nil, fmt.Errorf("%w: %d matcher(s) supplied for %d argument(s) of %s; either use matchers for every argument or for none",
			mimicerr.ErrInvalidMatchers, len(matchers), len(inv.args), inv.method)
	}
	return &Matcher{
		invocation: inv,
		matchers:   matchers,
	}, nil
}

// Invocation returns the wrapped invocation.
func (m *Matcher) Invocation() *Invocation {
	return m.invocation
}

// Matchers returns the per-argument matcher list.
func (m *Matcher) Matchers() []matcher.Matcher {
	return m.matchers
}

// MatchesMethod reports whether the candidate was made on the same mock
// instance and the same method, regardless of arguments.
func (m *Matcher) MatchesMethod(actual *Invocation) bool {
	return m.invocation.mock == actual.mock && m.invocation.method.Equal(actual.method)
}

// Matches reports whether the candidate call satisfies the pattern: same
// mock identity, same method, and every argument accepted by the matcher at
// its position.
func (m *Matcher) Matches(actual *Invocation) bool {
	if !m.MatchesMethod(actual) {
		return false
	}
	if len(actual.args) != len(m.matchers) {
		return false
	}
	for i, arg := range actual.args {
		if !m.matchers[i].Matches(arg) {
			return false
		}
	}
	return true
}
