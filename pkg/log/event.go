package log

import (
	"time"
)

// Event represents a protocol log event captured during one operation
// execution. CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// ExecutionID correlates every event of one operation execution (UUID).
	ExecutionID string `cbor:"2,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"3,keyasint"`

	// BoxID identifies the cloud relay box targeted by the execution.
	BoxID string `cbor:"4,keyasint,omitempty"`

	// DeviceID identifies the device targeted by the execution.
	DeviceID string `cbor:"5,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Submit  *SubmitEvent  `cbor:"6,keyasint,omitempty"`
	Poll    *PollEvent    `cbor:"7,keyasint,omitempty"`
	Outcome *OutcomeEvent `cbor:"8,keyasint,omitempty"`
	Error   *ErrorEvent   `cbor:"9,keyasint,omitempty"`
}

// Category classifies the event type.
type Category uint8

const (
	// CategorySubmit indicates a control submission.
	CategorySubmit Category = 0
	// CategoryPoll indicates one completion poll attempt.
	CategoryPoll Category = 1
	// CategoryOutcome indicates a terminal execution outcome.
	CategoryOutcome Category = 2
	// CategoryError indicates an error event.
	CategoryError Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategorySubmit:
		return "SUBMIT"
	case CategoryPoll:
		return "POLL"
	case CategoryOutcome:
		return "OUTCOME"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// SubmitEvent captures a control submission.
type SubmitEvent struct {
	// EntryCount is the number of wire entries submitted. Zero for a
	// state refresh.
	EntryCount int `cbor:"1,keyasint"`

	// StatusCodes lists the status code of each submitted entry, in
	// submission order.
	StatusCodes []string `cbor:"2,keyasint,omitempty"`

	// PendingIDs are the gateway's pending-operation identifiers.
	PendingIDs []string `cbor:"3,keyasint,omitempty"`
}

// PollEvent captures one completion poll attempt.
type PollEvent struct {
	// Attempt is the 1-based attempt number.
	Attempt int `cbor:"1,keyasint"`

	// MaxAttempts is the fixed attempt budget.
	MaxAttempts int `cbor:"2,keyasint"`

	// Statuses are the raw vendor status strings reported for each
	// pending identifier. Kept verbatim for diagnosing transitional
	// vendor states.
	Statuses []string `cbor:"3,keyasint,omitempty"`
}

// OutcomeEvent captures the terminal outcome of an execution.
type OutcomeEvent struct {
	// Result is the terminal state name:
	// SUCCEEDED, FAILED, TIMED_OUT, or CANCELLED.
	Result string `cbor:"1,keyasint"`

	// Attempts is the number of poll attempts made.
	Attempts int `cbor:"2,keyasint"`

	// ErrorCode is the vendor error code, when the gateway reported one.
	ErrorCode string `cbor:"3,keyasint,omitempty"`
}

// ErrorEvent captures an error during an execution.
type ErrorEvent struct {
	// Context describes what the execution was doing.
	Context string `cbor:"1,keyasint"`

	// Message is the error text.
	Message string `cbor:"2,keyasint"`
}
