package mimic

import "github.com/mimiclib/mimic/pkg/stub"

// Stubbing is a typed fluent handle for stubbing single-result methods.
type Stubbing[T any] struct {
	ongoing *stub.OngoingStubbing
}

// When claims the pending stubbing handle, typed by the call's result:
//
//	mimic.When(ctrl, reg.Lookup("datasource")).ThenReturn("BasicDataSource")
func When[T any](c *Controller, call T) *Stubbing[T] {
	_ = call
	return &Stubbing[T]{ongoing: c.When(nil)}
}

// ThenReturn stubs the call to return v.
func (s *Stubbing[T]) ThenReturn(v T) *Stubbing[T] {
	s.ongoing.ThenReturn(v)
	return s
}

// ThenError stubs the call to fail with err. For a method whose signature
// has no trailing error result, the mock panics with err when called.
func (s *Stubbing[T]) ThenError(err error) *Stubbing[T] {
	s.ongoing.ThenError(err)
	return s
}

// ThenAnswer stubs the call with a custom answer.
func (s *Stubbing[T]) ThenAnswer(a stub.Answer) *Stubbing[T] {
	s.ongoing.ThenAnswer(a)
	return s
}

// Stubbing2 is a typed fluent handle for stubbing two-result methods, the
// common (value, error) shape.
type Stubbing2[T1, T2 any] struct {
	ongoing *stub.OngoingStubbing
}

// When2 runs the two-result call to stub and claims its stubbing handle.
// The closure keeps the result types without Go's single-value restriction
// on call expressions in argument lists:
//
//	mimic.When2(ctrl, func() (string, error) {
//		return store.Fetch("key")
//	}).ThenReturn("value", nil)
func When2[T1, T2 any](c *Controller, call func() (T1, T2)) *Stubbing2[T1, T2] {
	call()
	return &Stubbing2[T1, T2]{ongoing: c.When(nil)}
}

// ThenReturn stubs the call to return (v1, v2).
func (s *Stubbing2[T1, T2]) ThenReturn(v1 T1, v2 T2) *Stubbing2[T1, T2] {
	s.ongoing.ThenReturn(v1, v2)
	return s
}

// ThenError stubs the call to fail with err, delivered through the
// trailing error result.
func (s *Stubbing2[T1, T2]) ThenError(err error) *Stubbing2[T1, T2] {
	s.ongoing.ThenError(err)
	return s
}

// ThenAnswer stubs the call with a custom answer.
func (s *Stubbing2[T1, T2]) ThenAnswer(a stub.Answer) *Stubbing2[T1, T2] {
	s.ongoing.ThenAnswer(a)
	return s
}
