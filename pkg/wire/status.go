package wire

import (
	"encoding/json"
	"fmt"
)

// Gateway status codes.
const (
	// StatusCodeLegacyPower is the legacy EchoNet power property ("80").
	// Carries a single string value.
	StatusCodeLegacyPower = "80"

	// StatusCodeEnvironment is the environmental sensor block ("F1").
	StatusCodeEnvironment = "F1"

	// StatusCodeQuality is the air quality / container status block ("F2").
	StatusCodeQuality = "F2"

	// StatusCodeControl is the structured control block ("F3").
	// Carries a 54-character hex payload.
	StatusCodeControl = "F3"
)

// Vendor value type discriminators.
const (
	valueTypeSingle = "valueSingle"
	valueTypeBinary = "valueBinary"
)

// ValueKind discriminates the two value encodings a status entry can carry.
type ValueKind uint8

const (
	// KindSingle is a plain string value.
	KindSingle ValueKind = iota

	// KindBinary is a hex payload value.
	KindBinary
)

// String returns the value kind name.
func (k ValueKind) String() string {
	switch k {
	case KindSingle:
		return "SINGLE"
	case KindBinary:
		return "BINARY"
	default:
		return "UNKNOWN"
	}
}

// StatusEntry is one wire instruction or reported property value.
// Entries are immutable once constructed; the gateway applies submitted
// entries in order, and some devices are order-sensitive.
type StatusEntry struct {
	statusCode string
	kind       ValueKind
	value      string
}

// NewSingleEntry builds an entry carrying a plain string value.
func NewSingleEntry(statusCode, value string) StatusEntry {
	return StatusEntry{statusCode: statusCode, kind: KindSingle, value: value}
}

// NewBinaryEntry builds an entry carrying a hex payload value.
func NewBinaryEntry(statusCode, code string) StatusEntry {
	return StatusEntry{statusCode: statusCode, kind: KindBinary, value: code}
}

// StatusCode returns the entry's status code.
func (e StatusEntry) StatusCode() string { return e.statusCode }

// Kind returns the entry's value encoding.
func (e StatusEntry) Kind() ValueKind { return e.kind }

// Value returns the entry's value: a plain string for KindSingle,
// a hex payload for KindBinary.
func (e StatusEntry) Value() string { return e.value }

// codeValue is the nested {"code": ...} object the vendor wraps values in.
type codeValue struct {
	Code string `json:"code"`
}

// statusEntryJSON is the vendor JSON shape of a status entry.
type statusEntryJSON struct {
	StatusCode  string     `json:"statusCode"`
	ValueType   string     `json:"valueType,omitempty"`
	ValueSingle *codeValue `json:"valueSingle,omitempty"`
	ValueBinary *codeValue `json:"valueBinary,omitempty"`
}

// MarshalJSON renders the vendor shape, e.g.
//
//	{"statusCode":"F3","valueType":"valueBinary","valueBinary":{"code":"0100..."}}
func (e StatusEntry) MarshalJSON() ([]byte, error) {
	out := statusEntryJSON{StatusCode: e.statusCode}
	switch e.kind {
	case KindSingle:
		out.ValueType = valueTypeSingle
		out.ValueSingle = &codeValue{Code: e.value}
	case KindBinary:
		out.ValueType = valueTypeBinary
		out.ValueBinary = &codeValue{Code: e.value}
	default:
		return nil, fmt.Errorf("status entry %q: unknown value kind %d", e.statusCode, e.kind)
	}
	return json.Marshal(out)
}

// UnmarshalJSON parses the vendor shape. The value kind is inferred from
// which value object is present; property responses only ever carry
// valueBinary, but valueSingle is accepted for symmetry.
func (e *StatusEntry) UnmarshalJSON(data []byte) error {
	var in statusEntryJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	e.statusCode = in.StatusCode
	switch {
	case in.ValueBinary != nil:
		e.kind = KindBinary
		e.value = in.ValueBinary.Code
	case in.ValueSingle != nil:
		e.kind = KindSingle
		e.value = in.ValueSingle.Code
	default:
		e.kind = KindSingle
		e.value = ""
	}
	return nil
}
