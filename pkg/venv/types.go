// pkg/venv/types.go
package venv

import "github.com/rs/zerolog"

// Options controls how an environment is materialized. Each field maps
// 1:1 to a flag of the external environment builder; a zero value means
// the flag is omitted and the builder's own default applies.
type Options struct {
	SystemSitePackages bool   // --system-site-packages
	Symlinks           bool   // --symlinks
	Copies             bool   // --copies
	WithoutPip         bool   // --without-pip
	Prompt             string // --prompt TEXT; defaults to the project directory name
}

// Config holds builder configuration
type Config struct {
	// TemplatePath is the activation script template location.
	// Defaults to DefaultTemplatePath.
	TemplatePath string

	// Logger for build diagnostics. Defaults to a component logger.
	Logger *zerolog.Logger
}
