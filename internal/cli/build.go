// internal/cli/build.go
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/venvkit/venvkit"
	"github.com/venvkit/venvkit/pkg/core"
	"github.com/venvkit/venvkit/pkg/store"
	"github.com/venvkit/venvkit/pkg/venv"
)

var (
	buildPybinary   string
	buildSystemSite bool
	buildSymlinks   bool
	buildCopies     bool
	buildRebuild    bool
	buildWithoutPip bool
	buildPrompt     string
)

var buildCmd = &cobra.Command{
	Use:   "build DIR [PATH]",
	Short: "Build the environment for a path under root DIR",
	Long: `Build (or skip, if already linked) a virtual environment rooted at DIR
and associated with PATH (default: current working directory).

Examples:
  venvkit build ~/.venvs
  venvkit build ~/.venvs ~/src/myproject
  venvkit build --pybinary python3.12 --rebuild ~/.venvs`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&buildPybinary, "pybinary", "", "interpreter to build the environment with")
	buildCmd.Flags().BoolVar(&buildSystemSite, "system-site-packages", false, "give the environment access to system site packages")
	buildCmd.Flags().BoolVar(&buildSymlinks, "symlinks", false, "symlink the interpreter into the environment")
	buildCmd.Flags().BoolVar(&buildCopies, "copies", false, "copy the interpreter into the environment")
	buildCmd.Flags().BoolVar(&buildRebuild, "rebuild", false, "rebuild even when the environment already exists")
	buildCmd.Flags().BoolVar(&buildWithoutPip, "without-pip", false, "skip bootstrapping pip into the environment")
	buildCmd.Flags().StringVar(&buildPrompt, "prompt", "", "prompt text for the activation script")
	buildCmd.MarkFlagsMutuallyExclusive("symlinks", "copies")
}

func runBuild(cmd *cobra.Command, args []string) error {
	root, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("normalizing root: %w", err)
	}

	path, err := targetPath(args[1:])
	if err != nil {
		return err
	}

	name, err := resolveInterpreter(buildPybinary)
	if err != nil {
		return err
	}

	if !buildRebuild && store.HasLinkedEnv(root, name, path) {
		fmt.Fprintln(cmd.OutOrStdout(), "Venv already exists")
		return nil
	}

	opts := &venv.Options{
		SystemSitePackages: buildSystemSite,
		Symlinks:           buildSymlinks,
		Copies:             buildCopies,
		WithoutPip:         buildWithoutPip,
		Prompt:             buildPrompt,
	}
	if !buildSymlinks && !buildCopies {
		if venv.DefaultSymlinks() {
			opts.Symlinks = true
		} else {
			opts.Copies = true
		}
	}

	logger := core.GetLogger("venv")
	builder := venv.NewBuilder(&venv.Config{
		TemplatePath: config.TemplatePath,
		Logger:       &logger,
	})
	if err := builder.Build(cmd.Context(), root, path, name, opts); err != nil {
		return &venvkit.Error{Op: "build", Path: path, Err: err}
	}

	return nil
}

// targetPath returns the absolute association path for a command: the
// positional argument when given, otherwise the current working directory.
func targetPath(args []string) (string, error) {
	if len(args) > 0 {
		path, err := filepath.Abs(args[0])
		if err != nil {
			return "", fmt.Errorf("normalizing path: %w", err)
		}
		return path, nil
	}

	path, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	return path, nil
}
