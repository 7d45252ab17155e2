package property

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/smartlink-protocol/smartlink-go/pkg/state"
	"github.com/smartlink-protocol/smartlink-go/pkg/wire"
)

// ErrMalformedProperty indicates a property block that cannot be decoded:
// bad hex, a payload shorter than the offsets the decoder reads, or an F3
// string whose total length is not exactly 54 characters.
var ErrMalformedProperty = errors.New("malformed property")

// Byte extents each decoder needs. F1 reads the little-endian uint16 at
// bytes 28:30, F2 reads single bytes up to index 18.
const (
	environmentalMinBytes = 30
	qualityMinBytes       = 19
)

// Environmental is the decoded F1 sensor block.
type Environmental struct {
	// Temperature in degrees Celsius.
	Temperature int

	// Humidity in percent relative humidity.
	Humidity int

	// PM25 is the PM2.5 concentration in micrograms per cubic metre.
	PM25 uint16
}

// DecodeEnvironmental decodes an F1 hex string.
func DecodeEnvironmental(hexStr string) (*Environmental, error) {
	raw, err := decodeHex(wire.StatusCodeEnvironment, hexStr, environmentalMinBytes)
	if err != nil {
		return nil, err
	}
	return &Environmental{
		Temperature: int(raw[3]),
		Humidity:    int(raw[4]),
		PM25:        binary.LittleEndian.Uint16(raw[28:30]),
	}, nil
}

// Quality is the decoded F2 quality/status block.
type Quality struct {
	Odor       state.QualityLevel
	Dust       state.QualityLevel
	AirQuality state.QualityLevel
	Water      state.WaterContainer
}

// DecodeQuality decodes an F2 hex string.
func DecodeQuality(hexStr string) (*Quality, error) {
	raw, err := decodeHex(wire.StatusCodeQuality, hexStr, qualityMinBytes)
	if err != nil {
		return nil, err
	}
	return &Quality{
		Odor:       state.ParseQualityLevel(int(raw[14])),
		Dust:       state.ParseQualityLevel(int(raw[15])),
		AirQuality: state.ParseQualityLevel(int(raw[17])),
		Water:      state.ParseWaterContainer(int(raw[18])),
	}, nil
}

// ControlState is the decoded F3 control block.
type ControlState struct {
	Mode           state.Mode
	Power          state.Power
	Humidification state.Humidification
	ChildLock      state.ChildLock
	LEDBrightness  state.LEDBrightness
}

// DecodeControlState decodes an F3 hex string. The string is header plus
// payload and must be exactly 54 characters; each field is read as two hex
// characters at its fixed payload offset, the same offsets the command side
// writes to. Unknown field codes fail with state.ErrUnknownWireValue.
func DecodeControlState(hexStr string) (*ControlState, error) {
	s := strings.ToUpper(strings.TrimSpace(hexStr))
	if len(s) != wire.F3TotalLen {
		return nil, fmt.Errorf("%w: F3 block is %d characters, want %d", ErrMalformedProperty, len(s), wire.F3TotalLen)
	}
	payload := s[wire.F3HeaderLen:]

	mode, err := state.ParseMode(field(payload, wire.F3OffsetMode))
	if err != nil {
		return nil, err
	}
	power, err := state.ParsePower(field(payload, wire.F3OffsetPower))
	if err != nil {
		return nil, err
	}
	humidification, err := state.ParseHumidification(field(payload, wire.F3OffsetHumidification))
	if err != nil {
		return nil, err
	}
	childLock, err := state.ParseChildLock(field(payload, wire.F3OffsetChildLock))
	if err != nil {
		return nil, err
	}
	led, err := state.ParseLEDBrightness(field(payload, wire.F3OffsetLED))
	if err != nil {
		return nil, err
	}

	return &ControlState{
		Mode:           mode,
		Power:          power,
		Humidification: humidification,
		ChildLock:      childLock,
		LEDBrightness:  led,
	}, nil
}

// field returns the two-character slice at a payload character offset.
func field(payload string, offset int) string {
	return payload[offset : offset+2]
}

// decodeHex decodes a hex string and enforces the minimum decoded length.
func decodeHex(block, hexStr string, minBytes int) ([]byte, error) {
	raw, err := hex.DecodeString(strings.TrimSpace(hexStr))
	if err != nil {
		return nil, fmt.Errorf("%w: %s block: %v", ErrMalformedProperty, block, err)
	}
	if len(raw) < minBytes {
		return nil, fmt.Errorf("%w: %s block is %d bytes, need at least %d", ErrMalformedProperty, block, len(raw), minBytes)
	}
	return raw, nil
}

// Properties is the decoded snapshot of one device. Blocks the device did
// not report are nil. Records are value objects built fresh on every decode;
// nothing is cached between polls.
type Properties struct {
	EchonetNode string
	Label       string

	Environmental *Environmental
	Quality       *Quality
	ControlState  *ControlState
}

// FromResponse decodes a deviceProperty response payload. Any block present
// in the status list must decode cleanly or the whole snapshot is rejected;
// a partially populated snapshot would mask real device state.
func FromResponse(dp *wire.DeviceProperty) (*Properties, error) {
	p := &Properties{
		EchonetNode: dp.EchonetNode,
		Label:       dp.Label,
	}
	for _, entry := range dp.Status {
		var err error
		switch strings.ToUpper(entry.StatusCode()) {
		case wire.StatusCodeEnvironment:
			p.Environmental, err = DecodeEnvironmental(entry.Value())
		case wire.StatusCodeQuality:
			p.Quality, err = DecodeQuality(entry.Value())
		case wire.StatusCodeControl:
			p.ControlState, err = DecodeControlState(entry.Value())
		}
		if err != nil {
			return nil, err
		}
	}
	return p, nil
}
