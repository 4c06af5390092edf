package config

import "time"

// CurrentVersion is the only configuration schema version this build reads.
const CurrentVersion = 1

// Config represents the entire application configuration file.
// It configures how debloater talks to devices and where it finds its
// catalog. It deliberately holds no Settings-screen values: those live for
// the process only.
type Config struct {
	Version int                `yaml:"version"`
	ADB     ADBConfig          `yaml:"adb"`
	Catalog CatalogConfig      `yaml:"catalog"`
	Log     LogConfig          `yaml:"log"`
	Devices map[string]*Device `yaml:"devices,omitempty"` // Keyed by adb serial
}

// ADBConfig controls the adb binary used for device queries.
type ADBConfig struct {
	Path           string `yaml:"path"`             // adb binary, resolved through PATH when relative
	Serial         string `yaml:"serial,omitempty"` // Target a specific device when several are attached
	TimeoutSeconds int    `yaml:"timeout_seconds"`  // Per-invocation timeout
}

// CatalogConfig selects the debloat catalog source.
type CatalogConfig struct {
	Path string `yaml:"path,omitempty"` // JSON or YAML file; empty uses the bundled catalog
}

// LogConfig mirrors the --log-level/--log-file flags.
type LogConfig struct {
	Level string `yaml:"level,omitempty"`
	File  string `yaml:"file,omitempty"`
}

// Device represents user-defined metadata for a single device.
type Device struct {
	Nickname string    `yaml:"nickname,omitempty"`  // Shown instead of brand/model
	LastSeen time.Time `yaml:"last_seen,omitempty"` // Last time the device answered a query
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Version: CurrentVersion,
		ADB: ADBConfig{
			Path:           "adb",
			TimeoutSeconds: 10,
		},
		Devices: make(map[string]*Device),
	}
}

// ADBTimeout returns the adb invocation timeout as a duration.
func (c *Config) ADBTimeout() time.Duration {
	if c.ADB.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.ADB.TimeoutSeconds) * time.Second
}

// Nickname returns the configured nickname for serial, or "".
func (c *Config) Nickname(serial string) string {
	if c.Devices == nil {
		return ""
	}
	if d, ok := c.Devices[serial]; ok && d != nil {
		return d.Nickname
	}
	return ""
}

// SetNickname sets a user-friendly nickname for a device.
func (c *Config) SetNickname(serial, nickname string) {
	if c.Devices == nil {
		c.Devices = make(map[string]*Device)
	}
	d, ok := c.Devices[serial]
	if !ok || d == nil {
		d = &Device{}
		c.Devices[serial] = d
	}
	d.Nickname = nickname
}

// applyDefaults fills zero values left by a partial file.
func (c *Config) applyDefaults() {
	if c.ADB.Path == "" {
		c.ADB.Path = "adb"
	}
	if c.ADB.TimeoutSeconds <= 0 {
		c.ADB.TimeoutSeconds = 10
	}
	if c.Devices == nil {
		c.Devices = make(map[string]*Device)
	}
}
