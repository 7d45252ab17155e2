package state

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPowerRoundTrip(t *testing.T) {
	for member := range powerCodes {
		parsed, err := ParsePower(member.Code())
		require.NoError(t, err)
		assert.Equal(t, member, parsed)
	}
}

func TestModeRoundTrip(t *testing.T) {
	for member := range modeCodes {
		parsed, err := ParseMode(member.Code())
		require.NoError(t, err)
		assert.Equal(t, member, parsed)
	}
}

func TestHumidificationRoundTrip(t *testing.T) {
	for member := range humidificationCodes {
		parsed, err := ParseHumidification(member.Code())
		require.NoError(t, err)
		assert.Equal(t, member, parsed)
	}
}

func TestChildLockRoundTrip(t *testing.T) {
	for member := range childLockCodes {
		parsed, err := ParseChildLock(member.Code())
		require.NoError(t, err)
		assert.Equal(t, member, parsed)
	}
}

func TestLEDBrightnessRoundTrip(t *testing.T) {
	for member := range ledCodes {
		parsed, err := ParseLEDBrightness(member.Code())
		require.NoError(t, err)
		assert.Equal(t, member, parsed)
	}
}

func TestCodesAreDistinct(t *testing.T) {
	// Distinct members of one enumeration never share a wire code.
	assert.Len(t, powerByCode, len(powerCodes))
	assert.Len(t, modeByCode, len(modeCodes))
	assert.Len(t, humidificationByCode, len(humidificationCodes))
	assert.Len(t, childLockByCode, len(childLockCodes))
	assert.Len(t, ledByCode, len(ledCodes))
}

func TestParseUnknownWireValue(t *testing.T) {
	_, err := ParsePower("42")
	assert.ErrorIs(t, err, ErrUnknownWireValue)

	_, err = ParseMode("99")
	assert.ErrorIs(t, err, ErrUnknownWireValue)

	_, err = ParseHumidification("10")
	assert.ErrorIs(t, err, ErrUnknownWireValue)

	_, err = ParseChildLock("F0")
	assert.ErrorIs(t, err, ErrUnknownWireValue)

	_, err = ParseLEDBrightness("FF")
	assert.ErrorIs(t, err, ErrUnknownWireValue)
}

func TestParseIsCaseSensitive(t *testing.T) {
	// Tables hold uppercase codes; lowercase input is not a table member.
	// Callers normalize before lookup.
	_, err := ParsePower("ff")
	assert.True(t, errors.Is(err, ErrUnknownWireValue))
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "ON", PowerOn.String())
	assert.Equal(t, "OFF", PowerOff.String())
	assert.Equal(t, "ION_SHOWER", ModeIonShower.String())
	assert.Equal(t, "AUTO", LEDAuto.String())
	assert.Equal(t, "UNKNOWN", Power(99).String())
}
