package wire

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleEntryJSON(t *testing.T) {
	entry := NewSingleEntry(StatusCodeLegacyPower, "30")

	data, err := json.Marshal(entry)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"statusCode": "80",
		"valueType": "valueSingle",
		"valueSingle": {"code": "30"}
	}`, string(data))
}

func TestBinaryEntryJSON(t *testing.T) {
	payload := "01000000" + "10" + "00000000000000000000000000000000000000000000"
	entry := NewBinaryEntry(StatusCodeControl, payload)

	data, err := json.Marshal(entry)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"statusCode": "F3",
		"valueType": "valueBinary",
		"valueBinary": {"code": "`+payload+`"}
	}`, string(data))
}

func TestStatusEntryUnmarshal(t *testing.T) {
	var entry StatusEntry
	err := json.Unmarshal([]byte(`{
		"statusCode": "f1",
		"valueType": "valueBinary",
		"valueBinary": {"code": "deadbeef"}
	}`), &entry)
	require.NoError(t, err)

	assert.Equal(t, "f1", entry.StatusCode())
	assert.Equal(t, KindBinary, entry.Kind())
	assert.Equal(t, "deadbeef", entry.Value())
}

func TestStatusEntryUnmarshalSingle(t *testing.T) {
	var entry StatusEntry
	err := json.Unmarshal([]byte(`{
		"statusCode": "80",
		"valueSingle": {"code": "31"}
	}`), &entry)
	require.NoError(t, err)

	assert.Equal(t, KindSingle, entry.Kind())
	assert.Equal(t, "31", entry.Value())
}
