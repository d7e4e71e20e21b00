package paths

import (
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEmpty(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
}

func TestNormalizeRelative(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	sep := string(os.PathSeparator)

	tests := []struct {
		name string
		path string
	}{
		{name: "plain_name", path: "ImgStation"},
		{name: "nested", path: "install/bin"},
		{name: "dotted", path: "./install"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, cwd+sep+tt.path, Normalize(tt.path))
		})
	}
}

func TestNormalizeAbsoluteUnchanged(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "windows_backslash", path: "C:\\install"},
		{name: "windows_forward", path: "D:/station/bin"},
		{name: "windows_lowercase", path: "c:\\install\\bin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.path, Normalize(tt.path))
		})
	}
}

func TestNormalizeShortDrivePathTreatedAsRelative(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("native absolute path on windows")
	}

	// "C:\" alone is length 3, below the recognition threshold.
	cwd, err := os.Getwd()
	require.NoError(t, err)

	got := Normalize("C:\\")
	assert.Equal(t, cwd+string(os.PathSeparator)+"C:\\", got)
}
