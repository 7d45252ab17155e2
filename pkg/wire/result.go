package wire

// Vendor result status strings. These appear in exactly one place: the
// Outcome classification below. Internal logic matches on Outcome, never on
// the raw strings, because the vendor contract is uncontrolled.
const (
	resultStatusSuccess = "success"
	resultStatusUnmatch = "unmatch"
	resultStatusError   = "error"
)

// ControlResult is one polled completion record from control/controlResult.
type ControlResult struct {
	ID        OpaqueID `json:"id"`
	Status    string   `json:"status"`
	ErrorCode *string  `json:"errorCode"`

	// EPC and EDT echo the EchoNet property code and data the gateway
	// applied. Diagnostic only.
	EPC string `json:"epc,omitempty"`
	EDT string `json:"edt,omitempty"`
}

// Outcome is the three-way classification of a polled result.
type Outcome uint8

const (
	// OutcomePending means the gateway has not reached a terminal status.
	OutcomePending Outcome = iota

	// OutcomeSucceeded means the device reached the requested state.
	// The vendor reports this as "success", or as "unmatch" when the
	// device was already in the requested state.
	OutcomeSucceeded

	// OutcomeFailed means the gateway reported an error.
	OutcomeFailed
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomePending:
		return "PENDING"
	case OutcomeSucceeded:
		return "SUCCEEDED"
	case OutcomeFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// Outcome classifies the result. A non-null error code fails the result
// regardless of the status string; unrecognized status strings are pending
// so transitional vendor states keep the poll loop running.
func (r *ControlResult) Outcome() Outcome {
	if r.Status == resultStatusError || r.ErrorCode != nil {
		return OutcomeFailed
	}
	if r.Status == resultStatusSuccess || r.Status == resultStatusUnmatch {
		return OutcomeSucceeded
	}
	return OutcomePending
}
