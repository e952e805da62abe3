// pkg/interp/interp.go
package interp

import (
	"fmt"
	"os/exec"
	"path/filepath"
)

// DefaultName is the interpreter looked up when none is given explicitly
const DefaultName = "python3"

// Resolve normalizes an interpreter name to the canonical name of its
// executable: the name is looked up on PATH, symlinks are resolved, and
// only the base name is kept. The on-disk key is therefore
// interpreter-name-only, never path-dependent, so the same logical
// interpreter found at different locations maps to the same environment.
func Resolve(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("looking up interpreter %q: %w", name, err)
	}

	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", fmt.Errorf("resolving interpreter path %q: %w", path, err)
	}

	return filepath.Base(resolved), nil
}

// Default resolves the default interpreter
func Default() (string, error) {
	return Resolve(DefaultName)
}
