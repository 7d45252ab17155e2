package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/smartlink-protocol/smartlink-go/pkg/property"
	"github.com/smartlink-protocol/smartlink-go/pkg/wire"
)

// Gateway endpoints, relative to the configured base URL.
const (
	pathDeviceControl  = "control/deviceControl"
	pathControlResult  = "control/controlResult"
	pathDeviceProperty = "control/deviceProperty"
)

// Client talks to the vendor cloud gateway. It is safe for concurrent use;
// the underlying http.Client serves concurrent executions.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates a gateway client from a validated config.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout),
		},
	}, nil
}

// SubmitControl submits the ordered entries to the device in one control
// transaction. An empty (or nil) entry sequence is submitted as an empty
// status list, which the gateway treats as a state refresh.
func (c *Client) SubmitControl(ctx context.Context, addr wire.DeviceAddress, entries []wire.StatusEntry) ([]wire.OpaqueID, error) {
	if entries == nil {
		entries = []wire.StatusEntry{}
	}
	body := wire.ControlRequest{
		ControlList: []wire.ControlItem{{
			DeviceID:      addr.DeviceID,
			EchonetNode:   addr.EchonetNode,
			EchonetObject: addr.EchonetObject,
			Status:        entries,
		}},
	}
	params := url.Values{
		"terminalAppId": {c.cfg.TerminalAppID},
		"boxId":         {addr.BoxID},
	}

	var resp wire.ControlResponse
	if err := c.postJSON(ctx, pathDeviceControl, params, body, &resp); err != nil {
		return nil, err
	}

	ids := make([]wire.OpaqueID, 0, len(resp.ControlList))
	for _, handle := range resp.ControlList {
		if handle.ID != "" {
			ids = append(ids, handle.ID)
		}
	}
	return ids, nil
}

// ControlResult polls completion status for pending identifiers.
func (c *Client) ControlResult(ctx context.Context, boxID string, ids []wire.OpaqueID) ([]wire.ControlResult, error) {
	queries := make([]wire.ResultQuery, len(ids))
	for i, id := range ids {
		queries[i] = wire.ResultQuery{ID: id}
	}
	body := wire.ResultRequest{ResultList: queries}
	params := url.Values{"boxId": {boxID}}

	var resp wire.ResultResponse
	if err := c.postJSON(ctx, pathControlResult, params, body, &resp); err != nil {
		return nil, err
	}
	return resp.ResultList, nil
}

// DeviceProperties fetches and decodes the device's current property
// snapshot. Decode failures (malformed blocks, unknown wire values) are
// returned as-is, distinct from transport errors.
func (c *Client) DeviceProperties(ctx context.Context, addr wire.DeviceAddress) (*property.Properties, error) {
	params := url.Values{
		"boxId":         {addr.BoxID},
		"echonetNode":   {addr.EchonetNode},
		"echonetObject": {addr.EchonetObject},
		"status":        {"true"},
	}

	var resp wire.PropertyResponse
	if err := c.getJSON(ctx, pathDeviceProperty, params, &resp); err != nil {
		return nil, err
	}
	return property.FromResponse(&resp.DeviceProperty)
}

// endpoint builds the full URL for a gateway path, attaching the app secret
// and any call parameters.
func (c *Client) endpoint(path string, params url.Values) string {
	values := url.Values{"appSecret": {c.cfg.AppSecret}}
	for k, vs := range params {
		values[k] = vs
	}
	return strings.TrimSuffix(c.cfg.BaseURL, "/") + "/" + path + "?" + values.Encode()
}

func (c *Client) postJSON(ctx context.Context, path string, params url.Values, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("gateway %s: encode request: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path, params), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("gateway %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	return c.do(req, out)
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path, params), nil)
	if err != nil {
		return fmt.Errorf("gateway %s: %w", path, err)
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("gateway %s: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Read a little of the body for diagnostics; the gateway's error
		// pages are not JSON.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("gateway %s: unexpected status %s: %s", req.URL.Path, resp.Status, snippet)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("gateway %s: decode response: %w", req.URL.Path, err)
	}
	return nil
}
