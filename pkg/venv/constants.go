// pkg/venv/constants.go
package venv

const (
	// DefaultTemplatePath is the system-wide activation script template
	DefaultTemplatePath = "/usr/share/venvkit/activate.in"

	// ActivateScript is the name of the activation script written into
	// the environment's executable directory
	ActivateScript = "activate"

	// PromptPlaceholder is the template token replaced with the prompt text
	PromptPlaceholder = "__VENV_PROMPT__"

	// BinNamePlaceholder is the template token replaced with the name of
	// the executable directory
	BinNamePlaceholder = "__VENV_BIN_NAME__"
)
