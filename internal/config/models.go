package config

// Config is the entire service configuration file.
type Config struct {
	Device DeviceConfig `yaml:"device"`
	MQTT   MQTTConfig   `yaml:"mqtt"`
	Pins   PinConfig    `yaml:"pins"`
	Timing TimingConfig `yaml:"timing"`
	Server ServerConfig `yaml:"server"`
	// LogLevel overrides the IRSERVICE_LOG_LEVEL environment variable when
	// set: "debug", "info", "warn" or "error".
	LogLevel string `yaml:"log_level,omitempty"`
}

// DeviceConfig identifies this gateway on the integration bus.
type DeviceConfig struct {
	// Name is the device identifier used in topic paths and mDNS
	// advertisement (e.g. "LivingRoomIR").
	Name string `yaml:"name"`
}

// MQTTConfig holds the connection settings for the device-integration
// broker.
type MQTTConfig struct {
	// Broker is the broker URL, e.g. "tcp://192.168.1.5:1883".
	Broker   string `yaml:"broker"`
	ClientID string `yaml:"client_id,omitempty"` // Defaults to the device name
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`
	// BaseTopic prefixes all topics, e.g. "sknsensors".
	BaseTopic string `yaml:"base_topic"`
}

// PinConfig names the GPIO pins wired to the IR hardware.
type PinConfig struct {
	// Send is the transmit pin driving the IR LED stage (e.g. "GPIO17").
	Send string `yaml:"send"`
	// Recv is the input pin from the demodulating receiver module
	// (e.g. "GPIO27"). Empty disables the receive side.
	Recv string `yaml:"recv,omitempty"`
}

// TimingConfig holds the engine's timing intervals, in milliseconds.
type TimingConfig struct {
	// PollIntervalMs paces the receive poll loop.
	PollIntervalMs int `yaml:"poll_interval_ms"`
	// LockTimeoutMs bounds transmission-guard acquisition.
	LockTimeoutMs int `yaml:"lock_timeout_ms"`
}

// ServerConfig holds the status HTTP/websocket listener settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	// Disabled turns the status server off entirely.
	Disabled bool `yaml:"disabled,omitempty"`
}

// Default returns a configuration with working defaults for everything
// except the broker address and pin names, which are deployment-specific.
func Default() *Config {
	return &Config{
		Device: DeviceConfig{
			Name: "IRService",
		},
		MQTT: MQTTConfig{
			Broker:    "tcp://127.0.0.1:1883",
			BaseTopic: "sknsensors",
		},
		Pins: PinConfig{
			Send: "GPIO17",
			Recv: "GPIO27",
		},
		Timing: TimingConfig{
			PollIntervalMs: 100,
			LockTimeoutMs:  3000,
		},
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
	}
}
