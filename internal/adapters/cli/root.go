package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath  string
	registryDir string
	jsonOutput  bool
	verbose     bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "voyager",
		Short: "Voyager CLI - Run and inspect sea voyage simulations",
		Long: `Voyager simulates rule-driven merchant sea voyages: weather, piloting,
encounters, port calls and trading, day by day from a single seed.

Examples:
  voyager voyage start --ship coaster --route coastal-run --seed 42
  voyager voyage start --file voyage.yaml --mode manual
  voyager voyage step --id 6f3a...
  voyager voyage status --id 6f3a...
  voyager ledger --id 6f3a...
  voyager report --id 6f3a... --json
  voyager registry ships`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (defaults to ./config.yaml, then /etc/voyager)")
	rootCmd.PersistentFlags().StringVar(&registryDir, "registry-dir", "",
		"Directory of registry YAML overrides (defaults to the embedded registry)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false,
		"Emit JSON instead of text where supported")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	// Add command groups
	rootCmd.AddCommand(NewVoyageCommand())
	rootCmd.AddCommand(NewLedgerCommand())
	rootCmd.AddCommand(NewReportCommand())
	rootCmd.AddCommand(NewRegistryCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
