// pkg/venv/template.go
package venv

import (
	"fmt"
	"os"
	"strings"
)

// renderTemplate reads the activation template and substitutes the two
// placeholder tokens verbatim. No escaping is applied.
func renderTemplate(templatePath, prompt, binName string) ([]byte, error) {
	data, err := os.ReadFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("reading activation template: %w", err)
	}

	script := strings.ReplaceAll(string(data), PromptPlaceholder, prompt)
	script = strings.ReplaceAll(script, BinNamePlaceholder, binName)
	return []byte(script), nil
}
