package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewRegistryCommand creates the registry command with subcommands
func NewRegistryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "registry",
		Short: "List the reference data voyages plan against",
		Long: `List the ports, routes and ship templates of the loaded registry.

The embedded registry ships with the binary; --registry-dir points at a
directory of YAML files that replaces it wholesale.

Examples:
  voyager registry ports
  voyager registry routes
  voyager registry ships --registry-dir ./worlds/northern-sea`,
	}

	cmd.AddCommand(newRegistryPortsCommand())
	cmd.AddCommand(newRegistryRoutesCommand())
	cmd.AddCommand(newRegistryShipsCommand())

	return cmd
}

// newRegistryPortsCommand creates the registry ports subcommand
func newRegistryPortsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ports",
		Short: "List ports",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tName\tSize\tWater\tConnections")
			for _, p := range a.registry.Ports() {
				conns := make([]string, 0, len(p.Connections))
				for dest, miles := range p.Connections {
					conns = append(conns, fmt.Sprintf("%s (%d mi)", dest, miles))
				}
				sort.Strings(conns)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					p.ID, p.Name, p.Size, p.Water, strings.Join(conns, ", "))
			}
			return w.Flush()
		},
	}
}

// newRegistryRoutesCommand creates the registry routes subcommand
func newRegistryRoutesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List routes",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tName\tPorts\tCircuit")
			for _, r := range a.registry.Routes() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%t\n",
					r.ID, r.Name, strings.Join(r.Ports, " -> "), r.Circuit)
			}
			return w.Flush()
		},
	}
}

// newRegistryShipsCommand creates the registry ships subcommand
func newRegistryShipsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ships",
		Short: "List ship templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tName\tType\tHull\tCargo\tMovement\tCrew")
			for _, t := range a.registry.ShipTemplates() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%d\n",
					t.ID, t.Name, t.ShipType, t.HullMax, t.CargoCapacity,
					t.Movement, t.Crew.Total())
			}
			return w.Flush()
		},
	}
}
