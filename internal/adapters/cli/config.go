package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brinevale/voyager-go/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration settings",
		Long: `Inspect Voyager configuration settings.

Configuration is loaded from multiple sources with priority:
1. Environment variables (VOYAGER_* prefix)
2. Config file (config.yaml)
3. Default values

Example:
  voyager config show`,
	}

	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

// newConfigShowCommand creates the config show subcommand
func newConfigShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				fmt.Printf("Warning: Failed to load config: %v\n", err)
				fmt.Println("Using default configuration.")
				cfg = config.LoadConfigOrDefault(configPath)
			}

			fmt.Println("Voyager Configuration")
			fmt.Println("=====================")

			fmt.Println("\nDatabase:")
			fmt.Printf("  Type:             %s\n", cfg.Database.Type)
			if cfg.Database.Type == "sqlite" {
				fmt.Printf("  Path:             %s\n", cfg.Database.Path)
			} else if cfg.Database.URL != "" {
				fmt.Printf("  URL:              %s\n", cfg.Database.URL)
			} else {
				fmt.Printf("  Host:             %s\n", cfg.Database.Host)
				fmt.Printf("  Port:             %d\n", cfg.Database.Port)
				fmt.Printf("  Database:         %s\n", cfg.Database.Name)
				fmt.Printf("  User:             %s\n", cfg.Database.User)
				fmt.Printf("  Max Connections:  %d\n", cfg.Database.Pool.MaxOpen)
			}

			fmt.Println("\nSimulation:")
			fmt.Printf("  Days/second:      %g\n", cfg.Simulation.DaysPerSecond)
			if cfg.Simulation.RegistryDir != "" {
				fmt.Printf("  Registry dir:     %s\n", cfg.Simulation.RegistryDir)
			} else {
				fmt.Printf("  Registry dir:     (embedded)\n")
			}
			if cfg.Simulation.WeatherCommand != "" {
				fmt.Printf("  Weather command:  %s\n", cfg.Simulation.WeatherCommand)
			} else {
				fmt.Printf("  Weather command:  (built-in generator)\n")
			}
			fmt.Printf("  Crew quality:     %s\n", cfg.Simulation.DefaultCrewQuality)

			fmt.Println("\nDaemon:")
			fmt.Printf("  PID File:         %s\n", cfg.Daemon.PIDFile)
			fmt.Printf("  Max Voyages:      %d\n", cfg.Daemon.MaxVoyages)
			fmt.Printf("  Resume on start:  %t\n", cfg.Daemon.ResumeOnStart)
			fmt.Printf("  Shutdown timeout: %s\n", cfg.Daemon.ShutdownTimeout)

			fmt.Println("\nLogging:")
			fmt.Printf("  Level:            %s\n", cfg.Logging.Level)
			fmt.Printf("  Format:           %s\n", cfg.Logging.Format)
			fmt.Printf("  Output:           %s\n", cfg.Logging.Output)

			return nil
		},
	}

	return cmd
}
