package transport

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a config that cannot address the gateway.
var ErrInvalidConfig = errors.New("invalid configuration")

// Defaults.
const (
	// DefaultUserAgent mimics the vendor's Android app; the gateway
	// rejects unknown agents.
	DefaultUserAgent = "smartlink_v200a_eu Dalvik/2.1.0 (Linux; U; Android 15; SM-S918B Build/AP3A.240905.015.A2)"

	// DefaultTimeout bounds each HTTP call. Independent of the engine's
	// poll policy.
	DefaultTimeout = 30 * time.Second
)

// Duration wraps time.Duration so YAML configs can say "30s".
type Duration time.Duration

// UnmarshalYAML parses a Go duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("%w: timeout %q: %v", ErrInvalidConfig, value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML renders the Go duration string.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Config holds the gateway connection settings.
type Config struct {
	// BaseURL is the gateway API root, e.g.
	// "https://eu-hms.cloudlabs.example.com/hems/pfApi/ta/".
	BaseURL string `yaml:"base_url"`

	// AppSecret is the static shared application secret attached to
	// every call.
	AppSecret string `yaml:"app_secret"`

	// TerminalAppID is the pre-obtained terminal credential attached to
	// control calls.
	TerminalAppID string `yaml:"terminal_app_id"`

	// UserAgent overrides DefaultUserAgent when set.
	UserAgent string `yaml:"user_agent,omitempty"`

	// Timeout overrides DefaultTimeout when set.
	Timeout Duration `yaml:"timeout,omitempty"`
}

// Validate checks that the config can address the gateway.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("%w: base_url is required", ErrInvalidConfig)
	}
	if c.AppSecret == "" {
		return fmt.Errorf("%w: app_secret is required", ErrInvalidConfig)
	}
	if c.TerminalAppID == "" {
		return fmt.Errorf("%w: terminal_app_id is required", ErrInvalidConfig)
	}
	return nil
}

// applyDefaults fills unset optional fields.
func (c *Config) applyDefaults() {
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.Timeout == 0 {
		c.Timeout = Duration(DefaultTimeout)
	}
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}
