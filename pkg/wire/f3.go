package wire

// F3 structured control payload layout. All lengths and offsets are in hex
// characters of the undecoded payload string, not byte indexes; the F1/F2
// sensor blocks index decoded bytes instead, and the two conventions must
// never be mixed.
const (
	// F3HeaderLen is the length of the field identifier header.
	F3HeaderLen = 8

	// F3PayloadLen is the length of the value payload following the header.
	F3PayloadLen = 46

	// F3TotalLen is the full length of an F3 hex string.
	F3TotalLen = F3HeaderLen + F3PayloadLen
)

// Character offsets of each settable field within the 46-character F3
// payload. Every field is two characters (one byte) wide. The same offsets
// are used when composing a control payload and when reading one back.
const (
	F3OffsetMode           = 0
	F3OffsetPower          = 18
	F3OffsetHumidification = 22
	F3OffsetChildLock      = 28
	F3OffsetLED            = 44
)
