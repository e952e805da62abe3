// venvkit.go
package venvkit

import (
	"context"

	"github.com/venvkit/venvkit/pkg/core"
	"github.com/venvkit/venvkit/pkg/interp"
	"github.com/venvkit/venvkit/pkg/resolver"
	"github.com/venvkit/venvkit/pkg/store"
	"github.com/venvkit/venvkit/pkg/venv"
)

// Re-export the building blocks for convenience, so external tools can
// drive venvkit without reaching into the sub-packages.
type (
	Builder       = venv.Builder
	BuildOptions  = venv.Options
	BuilderConfig = venv.Config
	Config        = core.Config
	Env           = store.Env
)

// EnvPathVar is the environment variable holding the ordered root list
const EnvPathVar = core.EnvPathVar

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// NewBuilder creates a new environment builder
func NewBuilder(cfg *BuilderConfig) *Builder {
	return venv.NewBuilder(cfg)
}

// Key returns the association key for a project path
func Key(path string) string {
	return store.Key(path)
}

// BinDir returns the executable directory for a (root, path, interpreter)
// triple. It does not check that the environment exists.
func BinDir(root, path, interpreter string) string {
	return store.BinDir(root, path, interpreter)
}

// HasLinkedEnv reports whether an environment is already linked for the
// given interpreter and path under root
func HasLinkedEnv(root, interpreter, path string) bool {
	return store.HasLinkedEnv(root, interpreter, path)
}

// Build materializes the environment for (root, path, interpreter),
// skipping the work when it is already linked and rebuild is false.
// A nil builder uses the defaults. Returns true when the environment
// was built, false when it already existed.
func Build(ctx context.Context, b *Builder, root, path, interpreter string, opts *BuildOptions, rebuild bool) (bool, error) {
	if b == nil {
		b = venv.NewBuilder(nil)
	}

	if !rebuild && store.HasLinkedEnv(root, interpreter, path) {
		return false, nil
	}

	if err := b.Build(ctx, root, path, interpreter, opts); err != nil {
		return false, err
	}
	return true, nil
}

// Resolve finds the executable directory of the nearest linked
// environment for path, walking ancestors when recursive is set.
func Resolve(interpreter, path string, roots []string, recursive bool) (string, error) {
	candidates := resolver.Candidates(path, recursive)
	root, match, err := resolver.Resolve(interpreter, roots, candidates)
	if err != nil {
		return "", err
	}
	return store.BinDir(root, match, interpreter), nil
}

// ResolveInterpreter normalizes an interpreter name to its canonical
// executable name, defaulting when name is empty.
func ResolveInterpreter(name string) (string, error) {
	if name == "" {
		return interp.Default()
	}
	return interp.Resolve(name)
}
