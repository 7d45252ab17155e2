package control

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/smartlink-protocol/smartlink-go/pkg/command"
	"github.com/smartlink-protocol/smartlink-go/pkg/log"
	"github.com/smartlink-protocol/smartlink-go/pkg/wire"
)

// Execution errors.
var (
	// ErrOperationFailed means the gateway reported a terminal error for
	// the operation. The device rejected or could not apply the change.
	ErrOperationFailed = errors.New("operation failed")

	// ErrOperationTimedOut means the poll budget was exhausted without a
	// terminal status. The device or gateway was unresponsive.
	ErrOperationTimedOut = errors.New("operation timed out")

	// ErrNoPendingID means the gateway accepted the submission but
	// returned no pending-operation identifier to poll.
	ErrNoPendingID = errors.New("no pending operation id")
)

// Fixed poll policy. Firmware expects this cadence; it is not configurable.
const (
	pollAttempts = 10
	pollInterval = time.Second
)

// Gateway is the transport surface the executor depends on. The HTTP client
// in pkg/transport implements it; tests substitute fakes.
type Gateway interface {
	// SubmitControl submits the ordered entries to the device in one
	// control transaction and returns the pending-operation identifiers.
	// An empty entry sequence is a valid submission: it triggers a state
	// refresh without changing anything.
	SubmitControl(ctx context.Context, addr wire.DeviceAddress, entries []wire.StatusEntry) ([]wire.OpaqueID, error)

	// ControlResult polls completion status for pending identifiers.
	ControlResult(ctx context.Context, boxID string, ids []wire.OpaqueID) ([]wire.ControlResult, error)
}

// Executor runs operations against devices through a Gateway.
// An Executor is safe for concurrent use; each execution is independent.
type Executor struct {
	gateway Gateway
	logger  log.Logger

	// pollInterval is overridden in tests; production always uses the
	// fixed policy.
	pollInterval time.Duration
}

// NewExecutor creates an Executor. A nil logger disables protocol capture.
func NewExecutor(gateway Gateway, logger log.Logger) *Executor {
	if logger == nil {
		logger = log.NoopLogger{}
	}
	return &Executor{
		gateway:      gateway,
		logger:       logger,
		pollInterval: pollInterval,
	}
}

// Execute renders op, submits it to the device at addr, and polls until the
// gateway reports a terminal status or the attempt budget runs out.
//
// A nil return means the operation succeeded ("unmatch" - the device was
// already in the requested state - counts as success). Failure and timeout
// are distinguishable via errors.Is with ErrOperationFailed and
// ErrOperationTimedOut. Cancelling ctx between attempts stops polling and
// returns the context error.
func (e *Executor) Execute(ctx context.Context, addr wire.DeviceAddress, op command.Operation) error {
	execID := uuid.New().String()
	entries := op.Render()

	ids, err := e.gateway.SubmitControl(ctx, addr, entries)
	if err != nil {
		e.logError(execID, addr, "submit control", err)
		return fmt.Errorf("submit control: %w", err)
	}
	if len(ids) == 0 {
		e.logError(execID, addr, "submit control", ErrNoPendingID)
		return ErrNoPendingID
	}
	e.logSubmit(execID, addr, entries, ids)

	for attempt := 1; attempt <= pollAttempts; attempt++ {
		if err := e.wait(ctx); err != nil {
			e.logOutcome(execID, addr, "CANCELLED", attempt-1, "")
			return err
		}

		results, err := e.gateway.ControlResult(ctx, addr.BoxID, ids)
		if err != nil {
			e.logError(execID, addr, "poll control result", err)
			return fmt.Errorf("poll control result: %w", err)
		}
		e.logPoll(execID, addr, attempt, results)

		switch outcome, failed := combinedOutcome(results, ids); outcome {
		case wire.OutcomeSucceeded:
			e.logOutcome(execID, addr, "SUCCEEDED", attempt, "")
			return nil
		case wire.OutcomeFailed:
			code := ""
			if failed != nil && failed.ErrorCode != nil {
				code = *failed.ErrorCode
			}
			e.logOutcome(execID, addr, "FAILED", attempt, code)
			if code != "" {
				return fmt.Errorf("%w: gateway error code %s", ErrOperationFailed, code)
			}
			return fmt.Errorf("%w: gateway reported error", ErrOperationFailed)
		}
		// Pending: keep polling.
	}

	e.logOutcome(execID, addr, "TIMED_OUT", pollAttempts, "")
	return fmt.Errorf("%w: no terminal status after %d attempts", ErrOperationTimedOut, pollAttempts)
}

// wait suspends one poll interval or until ctx is cancelled.
func (e *Executor) wait(ctx context.Context) error {
	t := time.NewTimer(e.pollInterval)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// combinedOutcome folds the polled results for one submission. Any failed
// result fails the whole operation immediately (the failing result is
// returned for diagnostics); the operation succeeds only when every pending
// identifier has reported success. Anything else is still pending.
func combinedOutcome(results []wire.ControlResult, ids []wire.OpaqueID) (wire.Outcome, *wire.ControlResult) {
	succeeded := make(map[wire.OpaqueID]bool, len(ids))
	for i := range results {
		r := &results[i]
		switch r.Outcome() {
		case wire.OutcomeFailed:
			return wire.OutcomeFailed, r
		case wire.OutcomeSucceeded:
			succeeded[r.ID] = true
		}
	}
	for _, id := range ids {
		if !succeeded[id] {
			return wire.OutcomePending, nil
		}
	}
	return wire.OutcomeSucceeded, nil
}

func (e *Executor) logSubmit(execID string, addr wire.DeviceAddress, entries []wire.StatusEntry, ids []wire.OpaqueID) {
	codes := make([]string, len(entries))
	for i, entry := range entries {
		codes[i] = entry.StatusCode()
	}
	pending := make([]string, len(ids))
	for i, id := range ids {
		pending[i] = string(id)
	}
	e.logger.Log(log.Event{
		Timestamp:   time.Now(),
		ExecutionID: execID,
		Category:    log.CategorySubmit,
		BoxID:       addr.BoxID,
		DeviceID:    addr.DeviceID,
		Submit: &log.SubmitEvent{
			EntryCount:  len(entries),
			StatusCodes: codes,
			PendingIDs:  pending,
		},
	})
}

func (e *Executor) logPoll(execID string, addr wire.DeviceAddress, attempt int, results []wire.ControlResult) {
	statuses := make([]string, len(results))
	for i, r := range results {
		statuses[i] = r.Status
	}
	e.logger.Log(log.Event{
		Timestamp:   time.Now(),
		ExecutionID: execID,
		Category:    log.CategoryPoll,
		BoxID:       addr.BoxID,
		DeviceID:    addr.DeviceID,
		Poll: &log.PollEvent{
			Attempt:     attempt,
			MaxAttempts: pollAttempts,
			Statuses:    statuses,
		},
	})
}

func (e *Executor) logOutcome(execID string, addr wire.DeviceAddress, result string, attempts int, errorCode string) {
	e.logger.Log(log.Event{
		Timestamp:   time.Now(),
		ExecutionID: execID,
		Category:    log.CategoryOutcome,
		BoxID:       addr.BoxID,
		DeviceID:    addr.DeviceID,
		Outcome: &log.OutcomeEvent{
			Result:    result,
			Attempts:  attempts,
			ErrorCode: errorCode,
		},
	})
}

func (e *Executor) logError(execID string, addr wire.DeviceAddress, context string, err error) {
	e.logger.Log(log.Event{
		Timestamp:   time.Now(),
		ExecutionID: execID,
		Category:    log.CategoryError,
		BoxID:       addr.BoxID,
		DeviceID:    addr.DeviceID,
		Error: &log.ErrorEvent{
			Context: context,
			Message: err.Error(),
		},
	})
}
