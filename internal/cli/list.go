// internal/cli/list.go
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/venvkit/venvkit/pkg/core"
	"github.com/venvkit/venvkit/pkg/store"
)

var listCmd = &cobra.Command{
	Use:   "list [DIR...]",
	Short: "List linked environments",
	Long:  `List the linked environments under the given roots, or under every configured root when none are given.`,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	roots := args
	if len(roots) == 0 {
		roots = config.SearchRoots()
	}
	if len(roots) == 0 {
		return core.ErrNoRoots
	}

	out := cmd.OutOrStdout()
	for _, root := range roots {
		envs, err := store.ListEnvs(root)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("listing %s: %w", root, err)
		}

		fmt.Fprintf(out, "Root: %s\n", root)
		if len(envs) == 0 {
			fmt.Fprintln(out, "  (no environments)")
			continue
		}
		for _, env := range envs {
			fmt.Fprintf(out, "  %-14s %s\n", env.Interpreter, env.Key)
		}
	}

	return nil
}
