// Package container stores, per mock, the ordered log of real invocations
// and the table of stubbed answers.
package container

import (
	"fmt"

	"github.com/mimiclib/mimic/pkg/invocation"
	"github.com/mimiclib/mimic/pkg/mimicerr"
	"github.com/mimiclib/mimic/pkg/stub"
)

type stubbing struct {
	matcher *invocation.Matcher
	answer  stub.Answer
}

// Container is the per-mock invocation store. It is mutated only by the
// mock handler driving that mock and lives as long as the mock does.
type Container struct {
	recorded []*invocation.Invocation
	stubbed  []stubbing

	// tentative "last call for stubbing" slot; consumed tracks whether an
	// answer already claimed it, so chained Then calls do not pop the log
	// twice.
	pending  *invocation.Matcher
	consumed bool
}

// New creates an empty container.
func New() *Container {
	return &Container{}
}

// RecordCandidate appends the call to the log and remembers it as the
// tentative stubbing target. Every non-verifying call goes through here;
// whether it was "real" or a stubbing setup is only known once an answer is
// attached, or not.
func (c *Container) RecordCandidate(m *invocation.Matcher) {
	c.recorded = append(c.recorded, m.Invocation())
	c.pending = m
	c.consumed = false
}

// AttachAnswer turns the tentative call into a stub. The stubbing call is
// removed from the log: setting up a stub is not a real interaction and
// must not count toward verification.
func (c *Container) AttachAnswer(a stub.Answer) error {
	if c.pending == nil {
		return fmt.Errorf("%w: no mock call to attach an answer to", mimicerr.ErrInvalidStub)
	}
	if !c.consumed {
		c.recorded = c.recorded[:len(c.recorded)-1]
		c.consumed = true
	}
	c.stubbed = append(c.stubbed, stubbing{matcher: c.pending, answer: a})
	return nil
}

// FindAnswer returns the answer of the most recently registered stub whose
// pattern matches the call, or nil when nothing matches. Scanning newest to
// oldest makes re-stubbing deterministic: a later stub shadows an earlier,
// possibly broader one.
func (c *Container) FindAnswer(actual *invocation.Invocation) stub.Answer {
	for i := len(c.stubbed) - 1; i >= 0; i-- {
		if c.stubbed[i].matcher.Matches(actual) {
			return c.stubbed[i].answer
		}
	}
	return nil
}

// Recorded returns the log of real invocations in call order.
func (c *Container) Recorded() []*invocation.Invocation {
	log := make([]*invocation.Invocation, len(c.recorded))
	copy(log, c.recorded)
	return log
}
