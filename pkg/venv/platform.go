// pkg/venv/platform.go
package venv

import "runtime"

// DefaultSymlinks reports whether the host platform prefers symlinked
// environments. Windows disadvises symlinks, everything else uses them.
func DefaultSymlinks() bool {
	return runtime.GOOS != "windows"
}
