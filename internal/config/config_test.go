package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFileMergesWithDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
picker:
  prompt: "Select something"
  max_rows: 15
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Select something", cfg.Picker.Prompt)
	assert.Equal(t, 15, cfg.Picker.MaxRows)
	assert.Equal(t, "color", cfg.Theme.Name, "unset fields keep their defaults")
}

func TestLoadConfigFileMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "color", cfg.Theme.Name)
	assert.Empty(t, cfg.Picker.Prompt)
	assert.Zero(t, cfg.Picker.MaxRows)
}

func TestLoadConfigFileRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("picker: ["), 0o644))

	_, err := LoadConfigFile(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantError bool
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}, wantError: false},
		{name: "simple theme", mutate: func(c *Config) { c.Theme.Name = "simple" }, wantError: false},
		{name: "unknown theme", mutate: func(c *Config) { c.Theme.Name = "neon" }, wantError: true},
		{name: "negative max rows", mutate: func(c *Config) { c.Picker.MaxRows = -1 }, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
