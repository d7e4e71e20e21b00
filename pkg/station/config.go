package station

import (
	"os"
	"time"

	"github.com/core-tools/hsu-station/pkg/errors"
	"github.com/core-tools/hsu-station/pkg/launcher"

	"gopkg.in/yaml.v3"
)

// BridgeConfig represents the top-level configuration file structure
type BridgeConfig struct {
	Station  StationOptions `yaml:"station"`
	Control  ControlOptions `yaml:"control"`
	LogLevel string         `yaml:"log_level,omitempty"`
}

// StationOptions configures how the station application is launched
type StationOptions struct {
	InstallDir  string `yaml:"install_dir,omitempty"` // overrides the IMGSTATIONEXE environment variable
	Executable  string `yaml:"executable,omitempty"`  // base name, platform suffix appended at launch
	WaitForExit bool   `yaml:"wait_for_exit,omitempty"`
}

// ControlOptions configures the control-plane connection to the station
type ControlOptions struct {
	Port          int           `yaml:"port"`
	RetryAttempts int           `yaml:"retry_attempts,omitempty"`
	RetryInterval time.Duration `yaml:"retry_interval,omitempty"`
}

const (
	DefaultControlPort   = 50055
	defaultRetryAttempts = 10
	defaultRetryInterval = 1 * time.Second
)

// DefaultConfig returns the configuration used when no config file is given.
func DefaultConfig() *BridgeConfig {
	config := &BridgeConfig{}
	setConfigDefaults(config)
	return config
}

// LoadConfigFromFile loads bridge configuration from a YAML file
func LoadConfigFromFile(filename string) (*BridgeConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.NewIOError("failed to read configuration file", err).WithContext("filename", filename)
	}

	var config BridgeConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.NewValidationError("failed to parse YAML configuration", err).WithContext("filename", filename)
	}

	setConfigDefaults(&config)

	return &config, nil
}

// ValidateConfig validates the entire configuration structure
func ValidateConfig(config *BridgeConfig) error {
	if config == nil {
		return errors.NewValidationError("configuration cannot be nil", nil)
	}

	if config.Control.Port <= 0 || config.Control.Port > 65535 {
		return errors.NewValidationError("control port must be between 1 and 65535", nil)
	}

	if config.Control.RetryAttempts < 0 {
		return errors.NewValidationError("retry attempts cannot be negative", nil)
	}

	if config.Control.RetryInterval < 0 {
		return errors.NewValidationError("retry interval cannot be negative", nil)
	}

	return nil
}

func setConfigDefaults(config *BridgeConfig) {
	if config.Station.Executable == "" {
		config.Station.Executable = launcher.DefaultExecutable
	}
	if config.Control.Port == 0 {
		config.Control.Port = DefaultControlPort
	}
	if config.Control.RetryAttempts == 0 {
		config.Control.RetryAttempts = defaultRetryAttempts
	}
	if config.Control.RetryInterval == 0 {
		config.Control.RetryInterval = defaultRetryInterval
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
}
