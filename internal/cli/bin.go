// internal/cli/bin.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/venvkit/venvkit"
	"github.com/venvkit/venvkit/pkg/core"
	"github.com/venvkit/venvkit/pkg/resolver"
	"github.com/venvkit/venvkit/pkg/store"
)

var (
	binRecursive bool
	binPybinary  string
)

var binCmd = &cobra.Command{
	Use:   "bin [PATH]",
	Short: "Print the executable directory of the nearest linked environment",
	Long: `Resolve the executable directory of a linked environment discoverable
from PATH (default: current working directory). Roots are taken from
PYENV_PATH in priority order; with --recursive all ancestors of PATH are
searched nearest-first.

The resolved directory is written to stdout without a trailing newline,
so it can be spliced directly into PATH:
  export PATH="$(venvkit bin -R):$PATH"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBin,
}

func init() {
	binCmd.Flags().BoolVarP(&binRecursive, "recursive", "R", false, "search all ancestors of PATH, nearest first")
	binCmd.Flags().StringVar(&binPybinary, "pybinary", "", "interpreter the environment was built for")
}

func runBin(cmd *cobra.Command, args []string) error {
	path, err := targetPath(args)
	if err != nil {
		return err
	}

	name, err := resolveInterpreter(binPybinary)
	if err != nil {
		return err
	}

	roots := config.SearchRoots()
	if len(roots) == 0 {
		return core.ErrNoRoots
	}

	candidates := resolver.Candidates(path, binRecursive)
	root, match, err := resolver.Resolve(name, roots, candidates)
	if err != nil {
		return &venvkit.Error{Op: "resolve", Path: path, Err: err}
	}

	// No trailing newline: the output is meant for command substitution.
	fmt.Fprint(cmd.OutOrStdout(), store.BinDir(root, match, name))
	return nil
}
