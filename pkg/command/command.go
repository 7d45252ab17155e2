package command

import (
	"strings"

	"github.com/smartlink-protocol/smartlink-go/pkg/state"
	"github.com/smartlink-protocol/smartlink-go/pkg/wire"
)

// Operation is a logical device instruction.
type Operation interface {
	// Render produces the ordered, possibly empty, wire entry sequence
	// for this operation. Rendering never fails.
	Render() []wire.StatusEntry
}

// SingleCommand sends a plain string value on a status code.
// Only the legacy power code uses this shape.
type SingleCommand struct {
	statusCode string
	value      string
}

// NewSingleCommand builds a single-value command.
func NewSingleCommand(statusCode, value string) SingleCommand {
	return SingleCommand{statusCode: statusCode, value: value}
}

// Render returns exactly one single-value entry.
func (c SingleCommand) Render() []wire.StatusEntry {
	return []wire.StatusEntry{wire.NewSingleEntry(c.statusCode, c.value)}
}

// StatusCommand sets one field of the structured F3 control block.
//
// The header is the 8-character field identifier, the offset is an even
// character position in the 46-character payload, and the value is one byte
// as two hex characters. Header and offset are fixed per settable property;
// only the value varies at runtime. Each property's constructor below owns
// its header/offset pair.
type StatusCommand struct {
	header string
	offset int
	value  string
}

// NewStatusCommand builds a structured control command.
func NewStatusCommand(header string, offset int, value string) StatusCommand {
	return StatusCommand{header: header, offset: offset, value: value}
}

// Render composes the F3 payload: 46 characters of "00" bytes with the
// value overlaid at the command's offset, prefixed by the header.
func (c StatusCommand) Render() []wire.StatusEntry {
	payload := []byte(strings.Repeat("0", wire.F3PayloadLen))
	copy(payload[c.offset:], c.value)
	return []wire.StatusEntry{
		wire.NewBinaryEntry(wire.StatusCodeControl, c.header+string(payload)),
	}
}

// OperationList is an ordered, non-empty bundle of operations applied as
// one wire transaction.
type OperationList []Operation

// NewOperationList bundles operations. The list order is the submission
// order.
func NewOperationList(ops ...Operation) OperationList {
	return OperationList(ops)
}

// Render concatenates each member's entries in list order.
func (l OperationList) Render() []wire.StatusEntry {
	var entries []wire.StatusEntry
	for _, op := range l {
		entries = append(entries, op.Render()...)
	}
	return entries
}

// Field identifier headers for the settable properties.
const (
	modeHeader           = "01000000"
	powerHeader          = "00020000"
	humidificationHeader = "00080000"
	childLockHeader      = "00400000"
	ledHeader            = "00004000"
)

// Values for the legacy power status code "80".
const (
	legacyPowerOn  = "30"
	legacyPowerOff = "31"
)

// NewModeCommand sets the operating mode.
func NewModeCommand(m state.Mode) StatusCommand {
	return NewStatusCommand(modeHeader, wire.F3OffsetMode, m.Code())
}

// NewHumidificationCommand sets the humidification state.
func NewHumidificationCommand(h state.Humidification) StatusCommand {
	return NewStatusCommand(humidificationHeader, wire.F3OffsetHumidification, h.Code())
}

// NewChildLockCommand sets the child lock state.
func NewChildLockCommand(c state.ChildLock) StatusCommand {
	return NewStatusCommand(childLockHeader, wire.F3OffsetChildLock, c.Code())
}

// NewLEDBrightnessCommand sets the display LED brightness.
func NewLEDBrightnessCommand(l state.LEDBrightness) StatusCommand {
	return NewStatusCommand(ledHeader, wire.F3OffsetLED, l.Code())
}

// newPowerStatusCommand sets the power field of the structured block.
// Only used inside NewPowerOperation; power must always be sent through
// both code paths.
func newPowerStatusCommand(p state.Power) StatusCommand {
	return NewStatusCommand(powerHeader, wire.F3OffsetPower, p.Code())
}

// NewPowerOperation turns the device on or off through both power code
// paths in one transaction: the structured F3 entry first, then the legacy
// "80" entry. Firmware generations differ in which path they honor, so the
// pair keeps both in sync.
func NewPowerOperation(p state.Power) OperationList {
	legacy := legacyPowerOff
	if p == state.PowerOn {
		legacy = legacyPowerOn
	}
	return NewOperationList(
		newPowerStatusCommand(p),
		NewSingleCommand(wire.StatusCodeLegacyPower, legacy),
	)
}

// RefreshOperation renders to no entries. Executing it still runs the full
// submit/poll cycle, which forces the gateway to re-publish current property
// values without changing anything.
type RefreshOperation struct{}

// NewRefreshOperation builds a refresh operation.
func NewRefreshOperation() RefreshOperation { return RefreshOperation{} }

// Render returns an empty sequence.
func (RefreshOperation) Render() []wire.StatusEntry { return nil }
