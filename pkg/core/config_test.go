package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootsFromEnv(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected []string
	}{
		{
			name:     "unset",
			value:    "",
			expected: nil,
		},
		{
			name:     "single_root",
			value:    "/srv/envs",
			expected: []string{"/srv/envs"},
		},
		{
			name:     "ordered_list",
			value:    "/srv/envs:/home/user/.venvs",
			expected: []string{"/srv/envs", "/home/user/.venvs"},
		},
		{
			name:     "empty_entries_skipped",
			value:    ":/srv/envs::/home/user/.venvs:",
			expected: []string{"/srv/envs", "/home/user/.venvs"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvPathVar, tt.value)
			assert.Equal(t, tt.expected, RootsFromEnv())
		})
	}
}

func TestSearchRootsPrecedence(t *testing.T) {
	cfg := &Config{Roots: []string{"/from/config"}}

	t.Setenv(EnvPathVar, "/from/env")
	assert.Equal(t, []string{"/from/env"}, cfg.SearchRoots(), "PYENV_PATH wins over the config file")

	t.Setenv(EnvPathVar, "")
	assert.Equal(t, []string{"/from/config"}, cfg.SearchRoots())
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `roots:
  - /srv/envs
template_path: /opt/venvkit/activate.in
interpreter: python3.12
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"/srv/envs"}, cfg.Roots)
	assert.Equal(t, "/opt/venvkit/activate.in", cfg.TemplatePath)
	assert.Equal(t, "python3.12", cfg.Interpreter)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("roots: [unclosed"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := &Config{
		Roots:        []string{"/srv/envs"},
		TemplatePath: "/opt/venvkit/activate.in",
	}

	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
