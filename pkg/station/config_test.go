package station

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/core-tools/hsu-station/pkg/errors"
	"github.com/core-tools/hsu-station/pkg/launcher"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, launcher.DefaultExecutable, config.Station.Executable)
	assert.Equal(t, DefaultControlPort, config.Control.Port)
	assert.Equal(t, 10, config.Control.RetryAttempts)
	assert.Equal(t, 1*time.Second, config.Control.RetryInterval)
	assert.Equal(t, "info", config.LogLevel)
	assert.NoError(t, ValidateConfig(config))
}

func TestLoadConfigFromFile(t *testing.T) {
	content := `
station:
  install_dir: "C:\\install"
  executable: CustomStation
  wait_for_exit: true
control:
  port: 51000
  retry_attempts: 3
  retry_interval: 250ms
log_level: debug
`
	filename := filepath.Join(t.TempDir(), "bridge.yaml")
	require.NoError(t, os.WriteFile(filename, []byte(content), 0644))

	config, err := LoadConfigFromFile(filename)
	require.NoError(t, err)

	assert.Equal(t, "C:\\install", config.Station.InstallDir)
	assert.Equal(t, "CustomStation", config.Station.Executable)
	assert.True(t, config.Station.WaitForExit)
	assert.Equal(t, 51000, config.Control.Port)
	assert.Equal(t, 3, config.Control.RetryAttempts)
	assert.Equal(t, 250*time.Millisecond, config.Control.RetryInterval)
	assert.Equal(t, "debug", config.LogLevel)
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "bridge.yaml")
	require.NoError(t, os.WriteFile(filename, []byte("station: {}\n"), 0644))

	config, err := LoadConfigFromFile(filename)
	require.NoError(t, err)

	assert.Equal(t, launcher.DefaultExecutable, config.Station.Executable)
	assert.Equal(t, DefaultControlPort, config.Control.Port)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfigFromFile(filepath.Join(t.TempDir(), "missing.yaml"))

	require.Error(t, err)
	assert.True(t, errors.IsIOError(err))
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "bridge.yaml")
	require.NoError(t, os.WriteFile(filename, []byte("station: [not: a map\n"), 0644))

	_, err := LoadConfigFromFile(filename)

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*BridgeConfig)
		shouldErr bool
	}{
		{
			name:      "defaults_valid",
			mutate:    func(c *BridgeConfig) {},
			shouldErr: false,
		},
		{
			name:      "port_too_high",
			mutate:    func(c *BridgeConfig) { c.Control.Port = 65536 },
			shouldErr: true,
		},
		{
			name:      "port_negative",
			mutate:    func(c *BridgeConfig) { c.Control.Port = -1 },
			shouldErr: true,
		},
		{
			name:      "negative_retry_attempts",
			mutate:    func(c *BridgeConfig) { c.Control.RetryAttempts = -1 },
			shouldErr: true,
		},
		{
			name:      "negative_retry_interval",
			mutate:    func(c *BridgeConfig) { c.Control.RetryInterval = -time.Second },
			shouldErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)

			err := ValidateConfig(config)

			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateNilConfig(t *testing.T) {
	err := ValidateConfig(nil)

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
