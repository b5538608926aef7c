// Package mimicerr defines error types and utilities for mimic
package mimicerr

import (
	"errors"
	"fmt"
)

// Common errors that can occur when building or using mocks
var (
	// ErrCannotMock is returned when a target type cannot be proxied
	ErrCannotMock = errors.New("type cannot be mocked")

	// ErrInvalidMatchers is returned when the number of explicit argument
	// matchers does not equal the argument count of the stubbed call
	ErrInvalidMatchers = errors.New("invalid use of argument matchers")

	// ErrInvalidStub is returned when a stubbing operation is used outside
	// the stubbing protocol, e.g. an answer with no preceding mock call
	ErrInvalidStub = errors.New("invalid stub")
)

// MockError represents a detailed error with context about the failing
// operation and the mock target it concerns.
type MockError struct {
	Op     string // Operation that failed
	Target string // Target type name
	Err    error  // Underlying error
}

// Error implements the error interface
func (e *MockError) Error() string {
	return fmt.Sprintf("mimic: %s %s: %v", e.Op, e.Target, e.Err)
}

// Unwrap returns the underlying error
func (e *MockError) Unwrap() error {
	return e.Err
}

// Is checks if the error matches the target error
func (e *MockError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewMockError creates a new MockError
func NewMockError(op, target string, err error) *MockError {
	return &MockError{
		Op:     op,
		Target: target,
		Err:    err,
	}
}

// VerificationError reports a mismatch between the expected and the actual
// number of matching calls recorded on a mock.
type VerificationError struct {
	Wanted   string // rendered wanted call pattern
	Expected string // expected count, e.g. "1" or "at least 2"
	Actual   int    // matching calls actually recorded
	Diff     string // optional diff against a same-method near-miss
}

// Error implements the error interface
func (e *VerificationError) Error() string {
	msg := fmt.Sprintf("mimic: %s: Actual: %d, expected: %s", e.Wanted, e.Actual, e.Expected)
	if e.Diff != "" {
		msg += "\nargument(s) are different:\n" + e.Diff
	}
	return msg
}
