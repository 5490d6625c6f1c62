package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/brinevale/voyager-go/internal/application/voyage/queries"
)

// NewLedgerCommand creates the ledger command
func NewLedgerCommand() *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Show a voyage's financial ledger",
		Long: `Print every ledger entry of a voyage with running balances.

The ledger records every gold movement: the opening capital, daily wage
and provision accruals flushed at each port, port fees, repairs, cargo
purchases and sales, customs, passengers and charters.

Example:
  voyager ledger --id 6f3a...`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLedger(id)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Voyage ID [required]")
	cmd.MarkFlagRequired("id")

	return cmd
}

// runLedger executes the ledger command
func runLedger(id string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	result, err := a.mediator.Send(context.Background(), &queries.GetLedgerQuery{VoyageID: id})
	if err != nil {
		return err
	}
	response := result.(*queries.GetLedgerResponse)

	if len(response.Entries) == 0 {
		fmt.Println("No ledger entries")
		return nil
	}

	fmt.Printf("\nLEDGER (%d entries)\n", len(response.Entries))
	fmt.Println("─────────────────────────────────────────────────────────────────────")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Date\tDescription\tIncome\tExpense\tBalance")
	fmt.Fprintln(w, "────\t───────────\t──────\t───────\t───────")
	for _, entry := range response.Entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			entry.Date,
			entry.Description,
			formatGold(entry.Income),
			formatGold(entry.Expense),
			formatGold(entry.Balance),
		)
	}
	w.Flush()

	fmt.Println("─────────────────────────────────────────────────────────────────────")
	fmt.Printf("Revenue %s gp, expenses %s gp, balance %s gp\n\n",
		formatGold(response.RevenueTotal), formatGold(response.ExpenseTotal),
		formatGold(response.Balance))
	return nil
}
