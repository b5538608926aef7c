package mimic

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"github.com/mimiclib/mimic/pkg/handler"
	"github.com/mimiclib/mimic/pkg/matcher"
	"github.com/mimiclib/mimic/pkg/mimicerr"
	"github.com/mimiclib/mimic/pkg/progress"
	"github.com/mimiclib/mimic/pkg/proxy"
	"github.com/mimiclib/mimic/pkg/stub"
	"github.com/mimiclib/mimic/pkg/verify"
)

// TestReporter receives verification failures and usage errors.
// *testing.T satisfies it.
type TestReporter interface {
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)
}

// Controller owns the mocking context of one test: the shared progress
// state, the proxy maker, and the failure reporter. Create one per test.
// A Controller and its mocks are not safe for concurrent use from multiple
// goroutines; parallel tests each get their own Controller.
type Controller struct {
	progress *progress.Progress
	maker    proxy.Maker
	reporter TestReporter
	log      *zap.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithTestReporter routes failures to t.Fatalf instead of panicking.
func WithTestReporter(t TestReporter) Option {
	return func(c *Controller) {
		c.reporter = t
	}
}

// WithLogger enables debug logging of mock interactions.
func WithLogger(log *zap.Logger) Option {
	return func(c *Controller) {
		c.log = log
	}
}

// WithMaker substitutes the proxy mechanism used to build stand-ins.
func WithMaker(m proxy.Maker) Option {
	return func(c *Controller) {
		c.maker = m
	}
}

// NewController creates a mocking context with the default func-field proxy
// maker, a panicking reporter and no logging.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		progress: progress.New(),
		maker:    proxy.FuncFieldMaker{},
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// fail surfaces an error through the configured reporter. Without one it
// panics: an unnoticed verification failure must never pass a test.
func (c *Controller) fail(err error) {
	if c.reporter != nil {
		c.reporter.Fatalf("%v", err)
		return
	}
	panic(err)
}

// When claims the stubbing handle published by the mock call evaluated as
// its argument. The argument value itself is ignored; what matters is that
// the call already went through the handler:
//
//	ctrl.When(reg.Lookup("datasource")).ThenReturn("BasicDataSource")
//
// For methods with several results, make the call as a statement and claim
// the handle with When(nil), or use the typed When2 helper.
func (c *Controller) When(_ any) *stub.OngoingStubbing {
	ongoing := c.progress.PullOngoingStubbing()
	if ongoing == nil {
		c.fail(fmt.Errorf("%w: When must wrap a call on a mock", mimicerr.ErrInvalidStub))
		// reachable only with a non-fatal reporter; keep the chain usable
		return stub.NewOngoing(discardSink{}, func(error) {})
	}
	return ongoing
}

type discardSink struct{}

func (discardSink) AttachAnswer(stub.Answer) error { return nil }

// Make builds a mock of T along with its container and handler wiring.
// T must be a struct type whose exported fields are funcs; each field is
// one mockable method. Returns an error wrapping mimicerr.ErrCannotMock
// when T cannot be proxied.
func Make[T any](c *Controller) (*T, error) {
	target := reflect.TypeOf((*T)(nil)).Elem()

	h := handler.New(c.progress, c.fail, c.log)
	m, err := c.maker.CreateMock(target, h.Handle)
	if err != nil {
		return nil, mimicerr.NewMockError("mock", target.String(), err)
	}

	c.log.Debug("mock created",
		zap.String("type", target.String()),
		zap.String("mock", h.ID().String()))
	return m.(*T), nil
}

// MustMake is Make that reports the creation failure instead of returning
// it.
func MustMake[T any](c *Controller) *T {
	m, err := Make[T](c)
	if err != nil {
		c.fail(err)
	}
	return m
}

// Verify arms the verification mode for the next call made on any of the
// controller's mocks and returns the mock unchanged, so the expectation
// reads as the call itself:
//
//	mimic.Verify(ctrl, reg, mimic.Times(1)).Lookup("datasource")
//
// The call-to-verify is not recorded and returns zero values.
func Verify[T any](c *Controller, mock *T, mode verify.Mode) *T {
	c.progress.VerificationStarted(mode)
	return mock
}

// Times expects the verified call to have occurred exactly n times.
// Times(0) asserts absence.
func Times(n int) verify.Mode {
	return verify.Times{Wanted: n}
}

// Never expects the verified call to never have occurred.
func Never() verify.Mode {
	return verify.Times{Wanted: 0}
}

// AtLeast expects the verified call to have occurred at least n times.
func AtLeast(n int) verify.Mode {
	return verify.AtLeast{Min: n}
}

// Any reports an any-value-of-type matcher for one argument position and
// returns the zero placeholder to use as the argument. Matcher helpers and
// literal arguments must not be mixed within one call: supply a matcher for
// every position or for none.
func Any[T any](c *Controller) T {
	c.progress.ReportMatcher(matcher.AnyOfType{Type: reflect.TypeOf((*T)(nil)).Elem()})
	var zero T
	return zero
}

// Eq reports an equality matcher for one argument position and returns the
// value as its own placeholder.
func Eq[T any](c *Controller, v T) T {
	c.progress.ReportMatcher(matcher.Equals{Wanted: v})
	return v
}

// MatchedBy reports a custom predicate matcher for one argument position.
func MatchedBy[T any](c *Controller, fn func(T) bool) T {
	c.progress.ReportMatcher(matcher.Func{
		Fn: func(actual any) bool {
			v, ok := actual.(T)
			return ok && fn(v)
		},
		Desc: fmt.Sprintf("<matched by func(%s) bool>", reflect.TypeOf((*T)(nil)).Elem()),
	})
	var zero T
	return zero
}
