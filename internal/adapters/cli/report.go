package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brinevale/voyager-go/internal/adapters/journal"
	"github.com/brinevale/voyager-go/internal/application/voyage/queries"
)

// NewReportCommand creates the report command
func NewReportCommand() *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render a voyage report",
		Long: `Render the structured report of a voyage as text, or as JSON with
--json. The report can be rendered at any point; before the final port
it reflects progress so far.

Examples:
  voyager report --id 6f3a...
  voyager report --id 6f3a... --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(id)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Voyage ID [required]")
	cmd.MarkFlagRequired("id")

	return cmd
}

// runReport executes the report command
func runReport(id string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	result, err := a.mediator.Send(context.Background(), &queries.GetReportQuery{VoyageID: id})
	if err != nil {
		return err
	}
	response := result.(*queries.GetReportResponse)

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(response.Report)
	}

	fmt.Print(journal.RenderText(&response.Report))
	return nil
}
