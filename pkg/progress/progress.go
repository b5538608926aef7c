// Package progress tracks the one-shot state that carries call-site intent
// across consecutive statements: the argument matchers reported while the
// call's arguments were evaluated, an armed verification mode, and the
// stubbing handle published by the last intercepted call.
package progress

import (
	"github.com/mimiclib/mimic/pkg/matcher"
	"github.com/mimiclib/mimic/pkg/stub"
	"github.com/mimiclib/mimic/pkg/verify"
)

// Progress is the per-test-context state machine. It is deliberately not a
// package global: create one per test (one per goroutine) so parallel tests
// never share pending state. Every slot drains on first read, so no
// leftover intent leaks into the next interaction.
type Progress struct {
	matchers []matcher.Matcher
	mode     verify.Mode
	ongoing  *stub.OngoingStubbing
}

// New creates an empty Progress.
func New() *Progress {
	return &Progress{}
}

// ReportMatcher pushes an argument matcher. Matcher helpers call this as a
// side effect while the mock call's argument list is evaluated, so the
// stack is in left-to-right argument order.
func (p *Progress) ReportMatcher(m matcher.Matcher) {
	p.matchers = append(p.matchers, m)
}

// PullMatchers drains the pending matcher stack.
func (p *Progress) PullMatchers() []matcher.Matcher {
	ms := p.matchers
	p.matchers = nil
	return ms
}

// VerificationStarted arms verification for the next intercepted call and
// invalidates any unclaimed stubbing handle.
func (p *Progress) VerificationStarted(mode verify.Mode) {
	p.ongoing = nil
	p.mode = mode
}

// PullVerificationMode drains the armed verification mode, if any.
func (p *Progress) PullVerificationMode() verify.Mode {
	mode := p.mode
	p.mode = nil
	return mode
}

// ReportOngoingStubbing publishes the stubbing handle for the invocation
// that just went through a handler. Each call overwrites the previous
// handle; an unclaimed one is simply forgotten.
func (p *Progress) ReportOngoingStubbing(s *stub.OngoingStubbing) {
	p.ongoing = s
}

// PullOngoingStubbing drains the pending stubbing handle, if any.
func (p *Progress) PullOngoingStubbing() *stub.OngoingStubbing {
	s := p.ongoing
	p.ongoing = nil
	return s
}
