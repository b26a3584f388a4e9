package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/spendpad/spendpad/internal/expense"
	"github.com/spendpad/spendpad/internal/tui"
)

// NewStatsCmd creates the stats command showing the three aggregates: total
// spend, current-month spend, and top category. Output is styled stat cards
// on a terminal and plain key-value lines otherwise.
func NewStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show spending aggregates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := configFromCmd(cmd)
			store, _ := openLedger(cmd)
			records := store.All()
			now := time.Now()

			if isTerminal(os.Stdout) {
				cmd.Println(tui.RenderStatsSummary(records, cfg.Currency, now))
				return nil
			}

			topLabel := "none"
			if top, ok := expense.TopCategory(records); ok {
				topLabel = top.String()
			}

			cmd.Printf("Total:        %s\n", tui.FormatAmount(cfg.Currency, expense.Total(records)))
			cmd.Printf("This month:   %s\n", tui.FormatAmount(cfg.Currency, expense.MonthlyTotal(records, now)))
			cmd.Printf("Top category: %s\n", topLabel)
			return nil
		},
	}

	return cmd
}
