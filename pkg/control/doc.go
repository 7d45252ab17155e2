// Package control implements the submit-then-poll execution engine.
//
// Executing an operation moves it through Built -> Submitted -> Polling and
// ends in exactly one of Succeeded, Failed, or TimedOut. The engine renders
// the operation, submits the entry sequence in one control call, then polls
// the gateway for the pending identifiers under a fixed bounded-retry
// policy: 10 attempts spaced 1 second apart. The count and spacing are
// protocol policy matched to the device firmware's cadence, not tunables.
//
// An operation that renders to no entries (a state refresh) still submits -
// the empty control list is the gateway's refresh trigger - and still runs
// the full poll cycle, so the caller always gets a confirmed up-to-date
// snapshot afterwards.
//
// Every execution owns its pending identifiers and retry counter; separate
// devices can be driven concurrently with no shared state beyond the
// transport. Waits between attempts are context-cancellable, and a
// cancelled execution reports the context error rather than a result.
package control
