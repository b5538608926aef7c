// Package verify provides verification modes applied to a mock's call log.
package verify

import (
	"strconv"

	"github.com/mimiclib/mimic/pkg/format"
	"github.com/mimiclib/mimic/pkg/invocation"
	"github.com/mimiclib/mimic/pkg/mimicerr"
)

// Data carries everything a Mode needs: the wanted call pattern and the
// full log of real invocations recorded on the mock.
type Data struct {
	Wanted *invocation.Matcher
	All    []*invocation.Invocation
}

// matching counts the log entries satisfying the wanted pattern.
func (d Data) matching() int {
	count := 0
	for _, inv := range d.All {
		if d.Wanted.Matches(inv) {
			count++
		}
	}
	return count
}

// nearMiss returns a same-method call whose arguments did not match, or nil.
// Used to explain failures where the method was called but differently.
func (d Data) nearMiss() *invocation.Invocation {
	for _, inv := range d.All {
		if d.Wanted.MatchesMethod(inv) && !d.Wanted.Matches(inv) {
			return inv
		}
	}
	return nil
}

// Mode checks a call log against an expectation and returns a
// *mimicerr.VerificationError when it is not met.
type Mode interface {
	Verify(data Data) error
}

// Times expects an exact number of matching calls. Zero asserts the call
// never happened.
type Times struct {
	Wanted int
}

// Verify implements Mode
func (m Times) Verify(data Data) error {
	actual := data.matching()
	if actual == m.Wanted {
		return nil
	}
	return fail(data, strconv.Itoa(m.Wanted), actual)
}

// AtLeast expects a minimum number of matching calls.
type AtLeast struct {
	Min int
}

// Verify implements Mode
func (m AtLeast) Verify(data Data) error {
	actual := data.matching()
	if actual >= m.Min {
		return nil
	}
	return fail(data, "at least "+strconv.Itoa(m.Min), actual)
}

func fail(data Data, expected string, actual int) error {
	err := &mimicerr.VerificationError{
		Wanted:   format.Wanted(data.Wanted),
		Expected: expected,
		Actual:   actual,
	}
	if miss := data.nearMiss(); miss != nil {
		err.Diff = format.ArgumentDiff(data.Wanted, miss)
	}
	return err
}
