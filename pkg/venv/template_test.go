package venv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTemplate = `# activation script
VIRTUAL_ENV_PROMPT="__VENV_PROMPT__"
PATH="$VIRTUAL_ENV/__VENV_BIN_NAME__:$PATH"
export PATH VIRTUAL_ENV_PROMPT
`

func writeTemplate(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "activate.in")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRenderTemplate(t *testing.T) {
	path := writeTemplate(t, testTemplate)

	script, err := renderTemplate(path, "(myproject)", "bin")
	require.NoError(t, err)

	rendered := string(script)
	assert.Contains(t, rendered, `VIRTUAL_ENV_PROMPT="(myproject)"`)
	assert.Contains(t, rendered, `PATH="$VIRTUAL_ENV/bin:$PATH"`)
	assert.NotContains(t, rendered, PromptPlaceholder)
	assert.NotContains(t, rendered, BinNamePlaceholder)
}

func TestRenderTemplateVerbatim(t *testing.T) {
	// Substitution is literal: shell metacharacters pass through unescaped.
	path := writeTemplate(t, "prompt=__VENV_PROMPT__\n")

	script, err := renderTemplate(path, `$(hostname) "quoted"`, "bin")
	require.NoError(t, err)
	assert.Equal(t, "prompt=$(hostname) \"quoted\"\n", string(script))
}

func TestRenderTemplateRepeatedTokens(t *testing.T) {
	path := writeTemplate(t, "__VENV_BIN_NAME__ __VENV_BIN_NAME__")

	script, err := renderTemplate(path, "", "Scripts")
	require.NoError(t, err)
	assert.Equal(t, "Scripts Scripts", string(script))
}

func TestRenderTemplateMissingFile(t *testing.T) {
	_, err := renderTemplate(filepath.Join(t.TempDir(), "missing.in"), "p", "bin")
	assert.Error(t, err)
}
