// Package mimic is a minimal interaction-based mocking engine: it records
// every call made on a mock, lets a test declare canned answers for
// specific calls, and lets a test assert how many times a specific call
// occurred.
//
// # Declaring a mockable type
//
// A mock target is a struct whose exported fields are funcs, one field per
// method. mimic fills every field with an interceptor, so the struct can be
// passed wherever the real collaborator is expected (directly, or through a
// one-line adapter to an interface):
//
//	type Registry struct {
//		Lookup func(name string) string
//	}
//
// # Creating mocks
//
// Every test gets its own Controller; it carries the state that links a
// stubbing or verification statement to the mock call next to it:
//
//	func TestCache(t *testing.T) {
//		ctrl := mimic.NewController(mimic.WithTestReporter(t))
//		reg := mimic.MustMake[Registry](ctrl)
//		...
//	}
//
// # Stubbing
//
// Wrap the call to stub in When and attach an answer. The call itself runs
// first (returning zero values) and is handed to When behind the scenes;
// the stubbing call never counts as a real interaction:
//
//	mimic.When(ctrl, reg.Lookup("datasource")).ThenReturn("BasicDataSource")
//
// Methods with two results are stubbed through a closure, or untyped by
// making the call as a statement and claiming the handle with When(nil):
//
//	mimic.When2(ctrl, func() (string, error) {
//		return store.Fetch("key")
//	}).ThenReturn("value", nil)
//
//	store.Fetch("gone")
//	ctrl.When(nil).ThenError(ErrNotFound)
//
// Unstubbed calls silently return zero values. Stubbing the same call again
// overrides the earlier stub: the most recently registered matching stub
// wins.
//
// # Argument matchers
//
// Matcher helpers stand in for arguments and make the stub match a range of
// calls. Within a single call, use matchers for every argument or for none:
//
//	mimic.When(ctrl, reg.Lookup(mimic.Any[string](ctrl))).ThenReturn("X")
//	mimic.When(ctrl, reg.Lookup(mimic.MatchedBy(ctrl, func(s string) bool {
//		return strings.HasPrefix(s, "user")
//	}))).ThenReturn("UserStore")
//
// # Verification
//
// Verify arms a verification mode and returns the mock, so the expectation
// is written as the call to check. The checking call is not recorded and
// returns zero values:
//
//	mimic.Verify(ctrl, reg, mimic.Times(1)).Lookup("datasource")
//	mimic.Verify(ctrl, reg, mimic.Never()).Lookup("userstore")
//
// A failed verification reports through the controller's TestReporter, or
// panics with a *mimicerr.VerificationError when none is configured.
//
// # Custom answers
//
// ThenAnswer computes the outcome from the actual invocation:
//
//	mimic.When(ctrl, reg.Lookup(mimic.Any[string](ctrl))).
//		ThenAnswer(stub.AnswerFunc(func(inv *invocation.Invocation) ([]any, error) {
//			return []any{"value for " + inv.Args()[0].(string)}, nil
//		}))
package mimic
