// Package proxy produces callable stand-ins whose every method invocation
// funnels to a single interception point.
package proxy

import (
	"reflect"

	"github.com/mimiclib/mimic/pkg/invocation"
)

// OnCall receives every intercepted call: the mock's identity, the method
// descriptor, and the ordered actual arguments. The returned values are
// coerced onto the method's result types, with nil slots becoming zero
// values. A non-nil error is the raised outcome of the call: it is
// delivered through the method's trailing error result, or by panicking
// when the signature has none.
type OnCall func(mock any, method invocation.Method, args []any) ([]any, error)

// Maker builds stand-ins for target types. Implementations decide which
// types are mockable; the engine never depends on how the stand-in is
// constructed.
type Maker interface {
	// CreateMock returns a pointer to a fresh stand-in of target, every
	// method of which routes through onCall. The stand-in must be built
	// without running any real initialization logic of the target.
	CreateMock(target reflect.Type, onCall OnCall) (any, error)
}
