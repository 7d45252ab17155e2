package state

import (
	"errors"
	"fmt"
)

// ErrUnknownWireValue indicates a wire code outside an enumeration's table.
var ErrUnknownWireValue = errors.New("unknown wire value")

// invert builds the code-to-member lookup from the member-to-code table.
func invert[K, V comparable](m map[K]V) map[V]K {
	out := make(map[V]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// Power is the device power setting.
type Power uint8

const (
	PowerOff Power = iota
	PowerOn
)

var powerCodes = map[Power]string{
	PowerOff: "00",
	PowerOn:  "FF",
}

var powerByCode = invert(powerCodes)

// Code returns the one-byte wire code for the power setting.
func (p Power) Code() string { return powerCodes[p] }

// String returns the power setting name.
func (p Power) String() string {
	switch p {
	case PowerOff:
		return "OFF"
	case PowerOn:
		return "ON"
	default:
		return "UNKNOWN"
	}
}

// ParsePower returns the power setting for a one-byte wire code.
func ParsePower(code string) (Power, error) {
	p, ok := powerByCode[code]
	if !ok {
		return 0, fmt.Errorf("%w: power code %q", ErrUnknownWireValue, code)
	}
	return p, nil
}

// Mode is the device operating mode.
type Mode uint8

const (
	// ModeOff is reported while the device is powered off.
	ModeOff Mode = iota
	ModeAuto
	ModeSleep
	ModePollen
	ModeLow
	ModeMedium
	ModeMax
	ModeLifeAir
	ModeIonShower
)

var modeCodes = map[Mode]string{
	ModeOff:       "00",
	ModeAuto:      "10",
	ModeSleep:     "11",
	ModePollen:    "13",
	ModeLow:       "14",
	ModeMedium:    "15",
	ModeMax:       "16",
	ModeLifeAir:   "20",
	ModeIonShower: "40",
}

var modeByCode = invert(modeCodes)

// Code returns the one-byte wire code for the operating mode.
func (m Mode) Code() string { return modeCodes[m] }

// String returns the operating mode name.
func (m Mode) String() string {
	switch m {
	case ModeOff:
		return "OFF"
	case ModeAuto:
		return "AUTO"
	case ModeSleep:
		return "SLEEP"
	case ModePollen:
		return "POLLEN"
	case ModeLow:
		return "LOW"
	case ModeMedium:
		return "MEDIUM"
	case ModeMax:
		return "MAX"
	case ModeLifeAir:
		return "LIFE_AIR"
	case ModeIonShower:
		return "ION_SHOWER"
	default:
		return "UNKNOWN"
	}
}

// ParseMode returns the operating mode for a one-byte wire code.
func ParseMode(code string) (Mode, error) {
	m, ok := modeByCode[code]
	if !ok {
		return 0, fmt.Errorf("%w: operating mode code %q", ErrUnknownWireValue, code)
	}
	return m, nil
}

// Humidification is the device humidification setting.
type Humidification uint8

const (
	HumidificationOff Humidification = iota
	HumidificationOn
)

var humidificationCodes = map[Humidification]string{
	HumidificationOff: "00",
	HumidificationOn:  "FF",
}

var humidificationByCode = invert(humidificationCodes)

// Code returns the one-byte wire code for the humidification setting.
func (h Humidification) Code() string { return humidificationCodes[h] }

// String returns the humidification setting name.
func (h Humidification) String() string {
	switch h {
	case HumidificationOff:
		return "OFF"
	case HumidificationOn:
		return "ON"
	default:
		return "UNKNOWN"
	}
}

// ParseHumidification returns the humidification setting for a one-byte wire code.
func ParseHumidification(code string) (Humidification, error) {
	h, ok := humidificationByCode[code]
	if !ok {
		return 0, fmt.Errorf("%w: humidification code %q", ErrUnknownWireValue, code)
	}
	return h, nil
}

// ChildLock is the device child lock setting.
type ChildLock uint8

const (
	ChildLockOff ChildLock = iota
	ChildLockOn
)

var childLockCodes = map[ChildLock]string{
	ChildLockOff: "00",
	ChildLockOn:  "FF",
}

var childLockByCode = invert(childLockCodes)

// Code returns the one-byte wire code for the child lock setting.
func (c ChildLock) Code() string { return childLockCodes[c] }

// String returns the child lock setting name.
func (c ChildLock) String() string {
	switch c {
	case ChildLockOff:
		return "OFF"
	case ChildLockOn:
		return "ON"
	default:
		return "UNKNOWN"
	}
}

// ParseChildLock returns the child lock setting for a one-byte wire code.
func ParseChildLock(code string) (ChildLock, error) {
	c, ok := childLockByCode[code]
	if !ok {
		return 0, fmt.Errorf("%w: child lock code %q", ErrUnknownWireValue, code)
	}
	return c, nil
}

// LEDBrightness is the device display LED brightness setting.
type LEDBrightness uint8

const (
	LEDOff LEDBrightness = iota
	LEDDim
	LEDAuto
)

var ledCodes = map[LEDBrightness]string{
	LEDOff:  "00",
	LEDDim:  "10",
	LEDAuto: "F0",
}

var ledByCode = invert(ledCodes)

// Code returns the one-byte wire code for the LED brightness setting.
func (l LEDBrightness) Code() string { return ledCodes[l] }

// String returns the LED brightness setting name.
func (l LEDBrightness) String() string {
	switch l {
	case LEDOff:
		return "OFF"
	case LEDDim:
		return "DIM"
	case LEDAuto:
		return "AUTO"
	default:
		return "UNKNOWN"
	}
}

// ParseLEDBrightness returns the LED brightness setting for a one-byte wire code.
func ParseLEDBrightness(code string) (LEDBrightness, error) {
	l, ok := ledByCode[code]
	if !ok {
		return 0, fmt.Errorf("%w: LED brightness code %q", ErrUnknownWireValue, code)
	}
	return l, nil
}
