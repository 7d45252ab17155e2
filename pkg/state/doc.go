// Package state defines the typed device settings and their one-byte wire
// codes, plus parsers for raw sensor readings.
//
// Every settable property (power, operating mode, humidification, child lock,
// LED brightness) is a closed enumeration with a fixed two-hex-character wire
// code. Encoding is total: every member has exactly one code. Decoding fails
// with ErrUnknownWireValue for codes outside the table, because devices can
// report transitional or vendor-reserved values that must not be silently
// mapped to a known state.
//
// Sensor parsers are total: quality levels are derived from raw integers by
// fixed thresholds, and the water container parser maps out-of-range ordinals
// to WaterUnknown so sensor noise never aborts a property decode.
package state
