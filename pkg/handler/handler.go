// Package handler implements the single entry point every intercepted mock
// call is routed through. Per call it decides, in order: verifying if a
// verification mode is armed, otherwise stubbing-setup / pass-through.
// There is no separate "plain call" state: a call made by code under test
// and a call made inside a When expression take the same path, and only the
// test's decision to claim the resulting stubbing handle tells them apart.
package handler

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mimiclib/mimic/pkg/container"
	"github.com/mimiclib/mimic/pkg/format"
	"github.com/mimiclib/mimic/pkg/invocation"
	"github.com/mimiclib/mimic/pkg/progress"
	"github.com/mimiclib/mimic/pkg/stub"
	"github.com/mimiclib/mimic/pkg/verify"
)

// Handler orchestrates the invocation protocol for one mock: it owns the
// mock's container and shares the test context's progress.
type Handler struct {
	id        uuid.UUID
	container *container.Container
	progress  *progress.Progress
	report    func(error)
	log       *zap.Logger
}

// New creates a handler with a fresh container. Verification failures and
// usage errors are routed through report.
func New(prog *progress.Progress, report func(error), log *zap.Logger) *Handler {
	id := uuid.New()
	return &Handler{
		id:        id,
		container: container.New(),
		progress:  prog,
		report:    report,
		log:       log.With(zap.String("mock", id.String())),
	}
}

// ID returns the identity assigned to the mock for log events.
func (h *Handler) ID() uuid.UUID {
	return h.id
}

// Handle processes one intercepted call; it is the OnCall of the mock's
// proxy. Both one-shot slots of the progress context are drained up front,
// whichever path the call takes.
func (h *Handler) Handle(mock any, method invocation.Method, args []any) ([]any, error) {
	inv := invocation.New(mock, method, args)

	mode := h.progress.PullVerificationMode()
	matchers := h.progress.PullMatchers()

	wanted, err := invocation.NewMatcher(inv, matchers)
	if err != nil {
		h.report(err)
		return nil, nil
	}

	if mode != nil {
		h.log.Debug("verifying call", zap.String("wanted", format.Wanted(wanted)))
		if err := mode.Verify(verify.Data{Wanted: wanted, All: h.container.Recorded()}); err != nil {
			h.report(err)
		}
		// the call-to-verify is not a real interaction: nothing recorded,
		// stub table untouched, zero values returned
		return nil, nil
	}

	h.container.RecordCandidate(wanted)
	h.progress.ReportOngoingStubbing(stub.NewOngoing(h.container, h.report))

	answer := h.container.FindAnswer(inv)
	if answer == nil {
		h.log.Debug("call intercepted", zap.String("call", format.Invocation(inv)), zap.Bool("stubbed", false))
		return nil, nil
	}
	h.log.Debug("call intercepted", zap.String("call", format.Invocation(inv)), zap.Bool("stubbed", true))
	return answer.Answer(inv)
}
