package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// SerialConfig names the port the chime controller hangs off.
type SerialConfig struct {
	Port string `json:"port"`
	Baud int    `json:"baud"`
}

// MIDIConfig is the optional MIDI monitor output.
type MIDIConfig struct {
	PortName string `json:"portName,omitempty"`
}

// UIConfig stores UI preferences.
type UIConfig struct {
	LastSelected int `json:"lastSelected,omitempty"`
}

// Config is the main configuration structure.
type Config struct {
	Serial SerialConfig `json:"serial"`
	MIDI   MIDIConfig   `json:"midi,omitempty"`
	UI     UIConfig     `json:"ui,omitempty"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Serial: SerialConfig{
			Port: "/dev/ttyUSB0",
			Baud: 9600,
		},
	}
}

// ConfigDir returns the config directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "chimebox"), nil
}

// ConfigPath returns the full path to config.json.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if cfg.Serial.Port == "" {
		cfg.Serial.Port = DefaultConfig().Serial.Port
	}
	if cfg.Serial.Baud == 0 {
		cfg.Serial.Baud = DefaultConfig().Serial.Baud
	}

	return &cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
