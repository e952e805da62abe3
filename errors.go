// errors.go
package venvkit

import (
	"fmt"

	"github.com/venvkit/venvkit/pkg/core"
	"github.com/venvkit/venvkit/pkg/resolver"
)

var (
	// ErrEnvNotFound indicates no linked environment was found for any
	// candidate path
	ErrEnvNotFound = resolver.ErrEnvNotFound

	// ErrNoRoots indicates no environment roots are configured
	ErrNoRoots = core.ErrNoRoots
)

// Error wraps an error with additional context
type Error struct {
	Op   string // Operation that failed
	Path string // Path involved if applicable
	Err  error  // Underlying error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
