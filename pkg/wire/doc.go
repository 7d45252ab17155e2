// Package wire defines the gateway's JSON wire model.
//
// The vendor gateway tunnels an EchoNet Lite derived control protocol over
// HTTPS/JSON. Device settings travel as status entries: a status code plus
// either a single string value or a fixed-width hex payload. This package
// holds those entry types, the request/response bodies for the control,
// result, and property endpoints, the F3 payload layout constants shared by
// the encode and decode sides, and the three-way Outcome classification that
// wraps the vendor's string-valued result statuses exactly once at the
// transport boundary.
package wire
