// pkg/store/platform.go
package store

import "runtime"

// BinDirName returns the platform-specific name of the executable
// directory inside a virtual environment.
func BinDirName() string {
	if runtime.GOOS == "windows" {
		return "Scripts"
	}
	return "bin"
}
