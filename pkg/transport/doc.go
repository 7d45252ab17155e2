// Package transport implements the HTTP client for the vendor cloud gateway.
//
// Every call attaches the static application secret and the pre-obtained
// terminal credential as query parameters; obtaining that credential (the
// terminal registration web flow) is outside this library. The client
// implements the three control-plane endpoints the protocol layer needs:
// submit control, poll control result, and fetch device properties. Network
// and HTTP failures are surfaced to the caller as transport errors and are
// never retried at this layer.
package transport
