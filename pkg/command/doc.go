// Package command models device operations and renders them to wire entries.
//
// An Operation is a logical, possibly composite, device instruction. The set
// of renderable shapes is closed and small: SingleCommand (a plain value on
// a legacy status code), StatusCommand (a one-byte value at a fixed offset
// in a structured F3 payload), and OperationList (an ordered bundle applied
// as one transaction). PowerOperation and RefreshOperation are pre-configured
// built-ins on top of those.
//
// Rendering is total and order-preserving: the gateway applies entries in
// submission order, and some firmware generations only honor one of the two
// power code paths, so the power built-in always sends both.
//
// Adding a new settable property needs only a new constructor with its
// header/offset/codec triple; the list type and the execution engine are
// untouched.
package command
