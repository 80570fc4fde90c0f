package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{"preset": "conservative", "verbose": true, "max_workers": 4}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "conservative", cfg.Preset)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, 4, cfg.MaxWorkers)
	assert.Empty(t, cfg.Input)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{not json`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestConfig_Validate(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(input, []byte("text"), 0644))

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"Empty config", Config{}, false},
		{"Valid preset and mode", Config{Preset: "standard", Mode: "hybrid"}, false},
		{"Existing input file", Config{Input: input}, false},
		{"Input and in_dir exclusive", Config{Input: input, InDir: dir}, true},
		{"Unknown preset", Config{Preset: "paranoid"}, true},
		{"Unknown mode", Config{Mode: "partial"}, true},
		{"Negative workers", Config{MaxWorkers: -1}, true},
		{"Missing input file", Config{Input: filepath.Join(dir, "nope.txt")}, true},
		{"Missing input dir", Config{InDir: filepath.Join(dir, "nodir")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_MergeWithDefaults(t *testing.T) {
	flags := Config{Input: "cli.txt", MaxWorkers: 2}
	defaults := Config{Input: "file.txt", Output: "out.json", Preset: "standard", MaxWorkers: 8}

	merged := flags.MergeWithDefaults(defaults)

	assert.Equal(t, "cli.txt", merged.Input, "flag value wins")
	assert.Equal(t, "out.json", merged.Output, "default fills empty field")
	assert.Equal(t, "standard", merged.Preset)
	assert.Equal(t, 2, merged.MaxWorkers, "non-zero flag value wins")
}
