// pkg/venv/builder.go
package venv

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/venvkit/venvkit/pkg/core"
	"github.com/venvkit/venvkit/pkg/store"
)

// Builder materializes virtual environments by shelling out to the
// interpreter's own environment builder (python -m venv). A single
// concrete engine; no other variant exists.
type Builder struct {
	templatePath string
	logger       zerolog.Logger
}

// NewBuilder creates a new environment builder
func NewBuilder(cfg *Config) *Builder {
	if cfg == nil {
		cfg = &Config{}
	}

	// Set defaults
	templatePath := cfg.TemplatePath
	if templatePath == "" {
		templatePath = DefaultTemplatePath
	}

	var logger zerolog.Logger
	if cfg.Logger != nil {
		logger = *cfg.Logger
	} else {
		logger = core.GetLogger("venv")
	}

	return &Builder{
		templatePath: templatePath,
		logger:       logger,
	}
}

// Build creates the environment for (root, path, interpreter) and writes
// the activation script into its executable directory, overwriting the
// one the external builder produced. It does not check whether the
// environment already exists; callers decide the skip/rebuild policy.
//
// Concurrent builds of the same association key are not coordinated;
// the tool's single-operator usage model accepts that race.
func (b *Builder) Build(ctx context.Context, root, path, interpreter string, opts *Options) error {
	if opts == nil {
		opts = &Options{}
	}

	envDir := store.EnvDir(root, path, interpreter)
	if err := os.MkdirAll(envDir, 0755); err != nil {
		return fmt.Errorf("creating environment directory: %w", err)
	}

	args := []string{"-m", "venv"}
	if opts.SystemSitePackages {
		args = append(args, "--system-site-packages")
	}
	if opts.Symlinks {
		args = append(args, "--symlinks")
	}
	if opts.Copies {
		args = append(args, "--copies")
	}
	if opts.WithoutPip {
		args = append(args, "--without-pip")
	}
	if opts.Prompt != "" {
		args = append(args, "--prompt", opts.Prompt)
	}
	args = append(args, envDir)

	// The activation script needs a prompt even when none was configured;
	// the project directory name stands in, matching the builder's default.
	prompt := opts.Prompt
	if prompt == "" {
		prompt = filepath.Base(path)
	}

	b.logger.Debug().
		Str("interpreter", interpreter).
		Strs("args", args).
		Msg("Invoking environment builder")

	cmd := exec.CommandContext(ctx, interpreter, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s -m venv: %w", interpreter, err)
	}

	binDir := store.BinDir(root, path, interpreter)
	if err := b.writeActivate(binDir, prompt); err != nil {
		return err
	}

	b.logger.Info().
		Str("env", envDir).
		Str("interpreter", interpreter).
		Msg("Environment built")

	return nil
}

// writeActivate renders the activation template and writes it into the
// executable directory.
func (b *Builder) writeActivate(binDir, prompt string) error {
	script, err := renderTemplate(b.templatePath, prompt, store.BinDirName())
	if err != nil {
		return err
	}

	dest := filepath.Join(binDir, ActivateScript)
	if err := os.WriteFile(dest, script, 0644); err != nil {
		return fmt.Errorf("writing activation script: %w", err)
	}

	return nil
}
