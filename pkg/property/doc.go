// Package property decodes the gateway's hex-encoded property blocks into
// typed records.
//
// A device reports up to three blocks: F1 (environmental sensors), F2
// (quality levels and container status), and F3 (control state). Each block
// is an independent hex string; an absent block is not an error. Decoding is
// strict: a string too short for the highest offset a decoder reads fails
// with ErrMalformedProperty rather than fabricating zero values, and decode
// failures are surfaced rather than defaulted so stale or partial state can
// never masquerade as real device state.
package property
