package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spendpad/spendpad/internal/tui"
)

// Supported list output formats.
const (
	outputTable = "table"
	outputJSON  = "json"
)

// NewListCmd creates the list command showing all expenses, newest first.
func NewListCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List recorded expenses, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := configFromCmd(cmd)
			store, _ := openLedger(cmd)
			records := store.All()

			switch output {
			case outputJSON:
				data, err := json.MarshalIndent(records, "", "  ")
				if err != nil {
					return fmt.Errorf("encode expenses: %w", err)
				}
				cmd.Println(string(data))
				return nil

			case outputTable:
				if len(records) == 0 {
					cmd.Println("No expenses recorded.")
					return nil
				}
				w := cmd.OutOrStdout()
				fmt.Fprintf(w, "%-26s  %-10s  %-13s  %12s  %s\n",
					"ID", "DATE", "CATEGORY", "AMOUNT", "DESCRIPTION")
				for _, rec := range records {
					fmt.Fprintf(w, "%-26s  %-10s  %-13s  %12s  %s\n",
						rec.ID, rec.Date, rec.Category,
						tui.FormatAmount(cfg.Currency, rec.Amount), rec.Description)
				}
				return nil

			default:
				return fmt.Errorf("unsupported output format: %s", output)
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format: table or json")

	return cmd
}
