package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/spendpad/spendpad/internal/expense"
	"github.com/spendpad/spendpad/internal/tui"
)

// NewAddCmd creates the add command for recording a new expense.
func NewAddCmd() *cobra.Command {
	var (
		amount   string
		category string
		date     string
	)

	cmd := &cobra.Command{
		Use:   "add <description>",
		Short: "Record a new expense",
		Example: `  spendpad add "Groceries" --amount 62.10 --category food
  spendpad add "Bus ticket" -a 2.75 -c transport --date 2026-08-20`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromCmd(cmd)
			store, files := openLedger(cmd)

			if category == "" {
				category = cfg.DefaultCategory
			}
			description := strings.Join(args, " ")

			var (
				rec expense.Record
				err error
			)
			if date != "" {
				var d expense.Date
				d, err = expense.ParseDate(date)
				if err != nil {
					return err
				}
				rec, err = store.AddOn(description, amount, category, d)
			} else {
				rec, err = store.Add(description, amount, category)
			}
			if err != nil {
				return err
			}

			if err := files.Save(cmd.Context(), store.All()); err != nil {
				return err
			}

			logger.Info().Str("id", rec.ID).Float64("amount", rec.Amount).Msg("expense added")
			cmd.Printf("Added %s %s (%s) on %s\n", rec.Description,
				tui.FormatAmount(cfg.Currency, rec.Amount), rec.Category, rec.Date)
			cmd.Printf("id: %s\n", rec.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&amount, "amount", "a", "", "expense amount, e.g. 12.50 (required)")
	cmd.Flags().StringVarP(&category, "category", "c", "",
		"one of: food, transport, entertainment, shopping, utilities, healthcare, other")
	cmd.Flags().StringVar(&date, "date", "", "expense date as YYYY-MM-DD (default: today)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
