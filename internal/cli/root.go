// internal/cli/root.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/venvkit/venvkit/pkg/core"
	"github.com/venvkit/venvkit/pkg/interp"
)

var (
	cfgFile   string
	verbosity int
	config    *core.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "venvkit",
	Short: "Per-path Python virtual environments",
	Long: `venvkit - Per-path Python virtual environments

Associates a Python virtual environment with a filesystem path and
resolves executables within it. Environments live under configured
roots, keyed by a digest of the project path.`,
	Version: "0.1.0",
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = cmd.Help()
		return fmt.Errorf("no command given")
	},
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/venvkit/config.yaml)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase logging verbosity (repeatable)")

	// Add commands
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(binCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	core.SetupLogger(verbosity)

	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}
}

// resolveInterpreter normalizes the interpreter name for a command: the
// flag wins, then the config file, then the default lookup.
func resolveInterpreter(flagValue string) (string, error) {
	name := flagValue
	if name == "" {
		name = config.Interpreter
	}
	if name == "" {
		return interp.Default()
	}
	return interp.Resolve(name)
}
