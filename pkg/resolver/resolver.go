// pkg/resolver/resolver.go
package resolver

import (
	"errors"
	"path/filepath"

	"github.com/venvkit/venvkit/pkg/core"
	"github.com/venvkit/venvkit/pkg/store"
)

// ErrEnvNotFound indicates that no root contains a linked environment
// for any candidate path
var ErrEnvNotFound = errors.New("no linked environment found")

// Candidates returns the ordered candidate paths for a lookup starting
// at path: the path itself, then each ancestor nearest-first when
// recursive is set, ending at the filesystem root.
func Candidates(path string, recursive bool) []string {
	candidates := []string{path}
	if !recursive {
		return candidates
	}

	current := path
	for {
		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		candidates = append(candidates, parent)
		current = parent
	}
	return candidates
}

// Resolve returns the first (root, path) pair whose mapped environment
// directory contains a usable executable directory for the interpreter.
// The outer loop is over candidate paths and the inner loop over roots,
// so the nearest candidate path wins regardless of root priority.
func Resolve(interpreter string, roots, candidates []string) (string, string, error) {
	logger := core.GetLogger("resolver")

	for _, path := range candidates {
		for _, root := range roots {
			logger.Trace().
				Str("root", root).
				Str("path", path).
				Str("interpreter", interpreter).
				Msg("Probing for linked environment")
			if store.HasLinkedEnv(root, interpreter, path) {
				return root, path, nil
			}
		}
	}

	return "", "", ErrEnvNotFound
}
