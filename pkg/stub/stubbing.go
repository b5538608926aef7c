package stub

// Sink receives the answer for the most recent potential stubbing call.
// The per-mock invocation container implements it.
type Sink interface {
	AttachAnswer(a Answer) error
}

// OngoingStubbing is the fluent handle bound to the invocation most recently
// routed through a mock handler. Claiming it and calling one of the Then
// methods turns that invocation into a stub.
type OngoingStubbing struct {
	sink   Sink
	report func(error)
}

// NewOngoing binds a stubbing handle to a sink. Usage errors raised by the
// sink are routed through report.
func NewOngoing(sink Sink, report func(error)) *OngoingStubbing {
	return &OngoingStubbing{
		sink:   sink,
		report: report,
	}
}

// ThenReturn stubs the call to return the given values.
func (s *OngoingStubbing) ThenReturn(values ...any) *OngoingStubbing {
	return s.ThenAnswer(Returns{Values: values})
}

// ThenError stubs the call to fail with err.
func (s *OngoingStubbing) ThenError(err error) *OngoingStubbing {
	return s.ThenAnswer(Raises{Err: err})
}

// ThenAnswer stubs the call with a custom answer. Calling a Then method
// again on the same handle registers another stub for the same call
// pattern; the most recently registered one wins.
func (s *OngoingStubbing) ThenAnswer(a Answer) *OngoingStubbing {
	if err := s.sink.AttachAnswer(a); err != nil {
		s.report(err)
	}
	return s
}
