package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default() should validate, got %v", err)
	}
	if cfg.PollInterval() != 100*time.Millisecond {
		t.Errorf("PollInterval() = %v, want 100ms", cfg.PollInterval())
	}
	if cfg.LockTimeout() != 3*time.Second {
		t.Errorf("LockTimeout() = %v, want 3s", cfg.LockTimeout())
	}
	if cfg.ClientID() != cfg.Device.Name {
		t.Errorf("ClientID() = %q, want device name %q", cfg.ClientID(), cfg.Device.Name)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing device name",
			mutate:  func(c *Config) { c.Device.Name = "" },
			wantErr: true,
		},
		{
			name:    "missing broker",
			mutate:  func(c *Config) { c.MQTT.Broker = "" },
			wantErr: true,
		},
		{
			name:    "missing send pin",
			mutate:  func(c *Config) { c.Pins.Send = "" },
			wantErr: true,
		},
		{
			name:    "poll interval too small",
			mutate:  func(c *Config) { c.Timing.PollIntervalMs = 1 },
			wantErr: true,
		},
		{
			name:    "poll interval too large",
			mutate:  func(c *Config) { c.Timing.PollIntervalMs = 10000 },
			wantErr: true,
		},
		{
			name:    "lock timeout too small",
			mutate:  func(c *Config) { c.Timing.LockTimeoutMs = 10 },
			wantErr: true,
		},
		{
			name:   "boundary values accepted",
			mutate: func(c *Config) { c.Timing.PollIntervalMs = MinPollIntervalMs; c.Timing.LockTimeoutMs = MaxLockTimeoutMs },
		},
		{
			name:    "invalid server port",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: true,
		},
		{
			name:   "port ignored when server disabled",
			mutate: func(c *Config) { c.Server.Port = 0; c.Server.Disabled = true },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	cfg := Default()
	cfg.Device.Name = "TestIR"
	cfg.Timing.PollIntervalMs = 250

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Device.Name != "TestIR" {
		t.Errorf("Device.Name = %q, want TestIR", loaded.Device.Name)
	}
	if loaded.Timing.PollIntervalMs != 250 {
		t.Errorf("PollIntervalMs = %d, want 250", loaded.Timing.PollIntervalMs)
	}
}

func TestLoadRejectsBadTimings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg := Default()
	cfg.Timing.LockTimeoutMs = 1
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should reject out-of-range lock timeout")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing file")
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	partial := "device:\n  name: PartialIR\nmqtt:\n  broker: tcp://broker:1883\n  base_topic: home\n"
	if err := os.WriteFile(path, []byte(partial), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Device.Name != "PartialIR" {
		t.Errorf("Device.Name = %q, want PartialIR", cfg.Device.Name)
	}
	if cfg.Timing.PollIntervalMs != 100 {
		t.Errorf("PollIntervalMs = %d, want default 100", cfg.Timing.PollIntervalMs)
	}
	if cfg.Pins.Send != "GPIO17" {
		t.Errorf("Pins.Send = %q, want default GPIO17", cfg.Pins.Send)
	}
}
