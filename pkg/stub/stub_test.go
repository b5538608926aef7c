package stub_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mimiclib/mimic/pkg/invocation"
	"github.com/mimiclib/mimic/pkg/stub"
)

type recordingSink struct {
	answers []stub.Answer
	err     error
}

func (s *recordingSink) AttachAnswer(a stub.Answer) error {
	if s.err != nil {
		return s.err
	}
	s.answers = append(s.answers, a)
	return nil
}

func TestReturnsAnswer(t *testing.T) {
	a := stub.Returns{Values: []any{"BasicDataSource"}}

	values, err := a.Answer(nil)
	require.NoError(t, err)
	assert.Equal(t, []any{"BasicDataSource"}, values)
}

func TestRaisesAnswer(t *testing.T) {
	boom := errors.New("boom")
	a := stub.Raises{Err: boom}

	values, err := a.Answer(nil)
	assert.Nil(t, values)
	assert.ErrorIs(t, err, boom)
}

func TestAnswerFunc(t *testing.T) {
	a := stub.AnswerFunc(func(inv *invocation.Invocation) ([]any, error) {
		return []any{"computed"}, nil
	})

	values, err := a.Answer(nil)
	require.NoError(t, err)
	assert.Equal(t, []any{"computed"}, values)
}

func TestThenReturnAttachesReturnsAnswer(t *testing.T) {
	sink := &recordingSink{}
	s := stub.NewOngoing(sink, func(error) { t.Fatal("unexpected report") })

	got := s.ThenReturn("X", nil)
	assert.Same(t, s, got)

	require.Len(t, sink.answers, 1)
	assert.Equal(t, stub.Returns{Values: []any{"X", nil}}, sink.answers[0])
}

func TestThenErrorAttachesRaisesAnswer(t *testing.T) {
	sink := &recordingSink{}
	boom := errors.New("boom")
	s := stub.NewOngoing(sink, func(error) { t.Fatal("unexpected report") })

	s.ThenError(boom)

	require.Len(t, sink.answers, 1)
	assert.Equal(t, stub.Raises{Err: boom}, sink.answers[0])
}

func TestChainedThenCallsAttachInOrder(t *testing.T) {
	sink := &recordingSink{}
	s := stub.NewOngoing(sink, func(error) { t.Fatal("unexpected report") })

	s.ThenReturn("first").ThenReturn("second")

	require.Len(t, sink.answers, 2)
	assert.Equal(t, stub.Returns{Values: []any{"first"}}, sink.answers[0])
	assert.Equal(t, stub.Returns{Values: []any{"second"}}, sink.answers[1])
}

func TestSinkErrorsAreReported(t *testing.T) {
	boom := errors.New("no call to stub")
	var reported error
	s := stub.NewOngoing(&recordingSink{err: boom}, func(err error) { reported = err })

	s.ThenReturn("X")

	assert.ErrorIs(t, reported, boom)
}
