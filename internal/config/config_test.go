package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"RANGEVIEWER_ENV", "RANGEVIEWER_LOG_LEVEL", "RANGEVIEWER_PORT",
		"RANGEVIEWER_DPI", "RANGEVIEWER_FIG_SIZE", "RANGEVIEWER_OUTPUT_DIR",
	} {
		t.Setenv(k, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, 100.0, cfg.DPI)
	assert.Equal(t, 8.0, cfg.FigureSize)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.False(t, cfg.Development())
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("RANGEVIEWER_ENV", "development")
	t.Setenv("RANGEVIEWER_PORT", "8080")
	t.Setenv("RANGEVIEWER_DPI", "72")
	t.Setenv("RANGEVIEWER_FIG_SIZE", "6.5")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.Development())
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 72.0, cfg.DPI)
	assert.Equal(t, 6.5, cfg.FigureSize)
}

func TestFromEnvUnparsableFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("RANGEVIEWER_PORT", "abc")
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Port)
}

func TestValidateRejectsNonPositive(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"RANGEVIEWER_PORT", "-1"},
		{"RANGEVIEWER_DPI", "0"},
		{"RANGEVIEWER_FIG_SIZE", "-3"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			_, err := FromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestDotEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("RANGEVIEWER_PORT=4242\n"), 0o644))
	// t.Setenv above leaves the key set to "", which godotenv.Load keeps.
	require.NoError(t, godotenv.Overload(path))
	t.Cleanup(func() { os.Unsetenv("RANGEVIEWER_PORT") })

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 4242, cfg.Port)
}
