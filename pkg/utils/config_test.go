package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test basic configuration access with defaults and type conversion
func TestConfig_Basic(t *testing.T) {
	cfg := NewConfig(map[string]string{
		"API_PORT":    "9090",
		"EMPTY_VALUE": "",
	})

	tests := []struct {
		name     string
		check    func() any
		expected any
	}{
		{
			name:     "existing key",
			check:    func() any { return cfg.Get("API_PORT") },
			expected: "9090",
		},
		{
			name:     "missing key returns empty",
			check:    func() any { return cfg.Get("MISSING") },
			expected: "",
		},
		{
			name:     "default ignored when key set",
			check:    func() any { return cfg.GetWithDefault("API_PORT", "8080") },
			expected: "9090",
		},
		{
			name:     "default used when key missing",
			check:    func() any { return cfg.GetWithDefault("MISSING", "8080") },
			expected: "8080",
		},
		{
			name:     "default used when value empty",
			check:    func() any { return cfg.GetWithDefault("EMPTY_VALUE", "fallback") },
			expected: "fallback",
		},
		{
			name:     "int conversion",
			check:    func() any { return cfg.GetInt("API_PORT") },
			expected: 9090,
		},
		{
			name:     "int conversion of missing key",
			check:    func() any { return cfg.GetInt("MISSING") },
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.check())
		})
	}
}

// Test modifying configuration values at runtime
func TestConfig_Set(t *testing.T) {
	cfg := NewConfig(nil)

	cfg.Set("KEY", "value")
	assert.Equal(t, "value", cfg.Get("KEY"))

	cfg.Set("KEY", "other")
	assert.Equal(t, "other", cfg.Get("KEY"))
}

// Test loading environment variables from a .env file
func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")

	require.NoError(t, os.WriteFile(envFile, []byte("FUNFACTS_TEST_KEY=from-file\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("FUNFACTS_TEST_KEY") })

	values := LoadEnv(envFile)
	assert.Equal(t, "from-file", values["FUNFACTS_TEST_KEY"])
}

// Test that a missing env file is skipped without error
func TestLoadEnv_MissingFile(t *testing.T) {
	values := LoadEnv(filepath.Join(t.TempDir(), "does-not-exist.env"))
	assert.NotNil(t, values)
}
