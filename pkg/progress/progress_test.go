package progress_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mimiclib/mimic/pkg/matcher"
	"github.com/mimiclib/mimic/pkg/progress"
	"github.com/mimiclib/mimic/pkg/stub"
	"github.com/mimiclib/mimic/pkg/verify"
)

type nopSink struct{}

func (nopSink) AttachAnswer(stub.Answer) error { return nil }

func TestMatchersDrainInReportOrder(t *testing.T) {
	p := progress.New()

	p.ReportMatcher(matcher.Any{})
	p.ReportMatcher(matcher.Equals{Wanted: "x"})

	ms := p.PullMatchers()
	assert.Len(t, ms, 2)
	assert.IsType(t, matcher.Any{}, ms[0])
	assert.IsType(t, matcher.Equals{}, ms[1])

	// drained: a second pull is empty
	assert.Empty(t, p.PullMatchers())
}

func TestVerificationModeIsOneShot(t *testing.T) {
	p := progress.New()

	p.VerificationStarted(verify.Times{Wanted: 1})
	assert.Equal(t, verify.Times{Wanted: 1}, p.PullVerificationMode())
	assert.Nil(t, p.PullVerificationMode())
}

func TestOngoingStubbingIsOneShot(t *testing.T) {
	p := progress.New()
	s := stub.NewOngoing(nopSink{}, func(error) {})

	p.ReportOngoingStubbing(s)
	assert.Same(t, s, p.PullOngoingStubbing())
	assert.Nil(t, p.PullOngoingStubbing())
}

func TestVerificationStartedInvalidatesUnclaimedStubbing(t *testing.T) {
	p := progress.New()

	p.ReportOngoingStubbing(stub.NewOngoing(nopSink{}, func(error) {}))
	p.VerificationStarted(verify.Times{Wanted: 0})

	assert.Nil(t, p.PullOngoingStubbing())
}

func TestLaterStubbingOverwritesEarlier(t *testing.T) {
	p := progress.New()
	first := stub.NewOngoing(nopSink{}, func(error) {})
	second := stub.NewOngoing(nopSink{}, func(error) {})

	p.ReportOngoingStubbing(first)
	p.ReportOngoingStubbing(second)

	assert.Same(t, second, p.PullOngoingStubbing())
}
