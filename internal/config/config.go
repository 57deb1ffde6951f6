package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Timing interval bounds. The poll interval trades receive latency against
// CPU; the lock timeout must cover the longest legitimate transmission
// (AC state blocks with repeats) without letting a stuck sender wedge the
// service forever.
const (
	MinPollIntervalMs = 10
	MaxPollIntervalMs = 5000
	MinLockTimeoutMs  = 100
	MaxLockTimeoutMs  = 60000
)

// Load reads and validates a configuration file. Missing file is an error;
// use Default() for a starting point.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path, creating parent directories as
// needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks required fields and timing interval ranges.
func (c *Config) Validate() error {
	if c.Device.Name == "" {
		return fmt.Errorf("device.name is required")
	}
	if c.MQTT.Broker == "" {
		return fmt.Errorf("mqtt.broker is required")
	}
	if c.MQTT.BaseTopic == "" {
		return fmt.Errorf("mqtt.base_topic is required")
	}
	if c.Pins.Send == "" {
		return fmt.Errorf("pins.send is required")
	}
	if c.Timing.PollIntervalMs < MinPollIntervalMs || c.Timing.PollIntervalMs > MaxPollIntervalMs {
		return fmt.Errorf("timing.poll_interval_ms must be between %d and %d, got %d",
			MinPollIntervalMs, MaxPollIntervalMs, c.Timing.PollIntervalMs)
	}
	if c.Timing.LockTimeoutMs < MinLockTimeoutMs || c.Timing.LockTimeoutMs > MaxLockTimeoutMs {
		return fmt.Errorf("timing.lock_timeout_ms must be between %d and %d, got %d",
			MinLockTimeoutMs, MaxLockTimeoutMs, c.Timing.LockTimeoutMs)
	}
	if !c.Server.Disabled && (c.Server.Port < 1 || c.Server.Port > 65535) {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	return nil
}

// PollInterval returns the poll interval as a duration.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Timing.PollIntervalMs) * time.Millisecond
}

// LockTimeout returns the guard timeout as a duration.
func (c *Config) LockTimeout() time.Duration {
	return time.Duration(c.Timing.LockTimeoutMs) * time.Millisecond
}

// ClientID returns the MQTT client id, defaulting to the device name.
func (c *Config) ClientID() string {
	if c.MQTT.ClientID != "" {
		return c.MQTT.ClientID
	}
	return c.Device.Name
}
