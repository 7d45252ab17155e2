package wire

import (
	"encoding/json"
	"fmt"
)

// DeviceAddress identifies the physical target of a control or poll call.
// It is assembled by the discovery/pairing layer and forwarded verbatim.
type DeviceAddress struct {
	// BoxID identifies the cloud relay box the device is registered under.
	BoxID string

	// DeviceID is the gateway's device identifier.
	DeviceID string

	// EchonetNode and EchonetObject are the EchoNet Lite address strings
	// of the appliance behind the box.
	EchonetNode   string
	EchonetObject string
}

// OpaqueID is a pending-operation handle issued by the gateway.
// The vendor has been observed returning both JSON strings and numbers
// for it, so decoding accepts either; the value is never interpreted.
type OpaqueID string

// UnmarshalJSON accepts a JSON string or number.
func (id *OpaqueID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = OpaqueID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*id = OpaqueID(n.String())
		return nil
	}
	return fmt.Errorf("opaque id: cannot decode %s", data)
}

// ControlRequest is the body of POST control/deviceControl.
type ControlRequest struct {
	ControlList []ControlItem `json:"controlList"`
}

// ControlItem addresses one device and carries the ordered status entries
// to apply to it.
type ControlItem struct {
	DeviceID      string        `json:"deviceId"`
	EchonetNode   string        `json:"echonetNode"`
	EchonetObject string        `json:"echonetObject"`
	Status        []StatusEntry `json:"status"`
}

// ControlResponse is the body returned by POST control/deviceControl.
type ControlResponse struct {
	ControlList []ControlHandle `json:"controlList"`
}

// ControlHandle carries the pending-operation identifier for one submission.
type ControlHandle struct {
	ID OpaqueID `json:"id"`
}

// ResultRequest is the body of POST control/controlResult.
type ResultRequest struct {
	ResultList []ResultQuery `json:"resultList"`
}

// ResultQuery names one pending operation to poll.
type ResultQuery struct {
	ID OpaqueID `json:"id"`
}

// ResultResponse is the body returned by POST control/controlResult.
type ResultResponse struct {
	ResultList []ControlResult `json:"resultList"`
}

// PropertyResponse is the body returned by GET control/deviceProperty.
type PropertyResponse struct {
	DeviceProperty DeviceProperty `json:"deviceProperty"`
}

// DeviceProperty is one device's reported property snapshot. Status carries
// the hex-encoded property blocks keyed by status code; a block the device
// does not report is simply absent from the list.
type DeviceProperty struct {
	EchonetNode string        `json:"echonetNode"`
	Label       string        `json:"label"`
	Status      []StatusEntry `json:"status"`
}
