package cli

import (
	"github.com/spf13/cobra"
)

// NewRemoveCmd creates the remove command for deleting an expense by id.
// Removing an id that does not exist is not an error, matching the store's
// no-op semantics.
func NewRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm", "delete"},
		Short:   "Delete an expense by id",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, files := openLedger(cmd)

			id := args[0]
			if !store.Remove(id) {
				cmd.Printf("No expense with id %s\n", id)
				return nil
			}

			if err := files.Save(cmd.Context(), store.All()); err != nil {
				return err
			}

			logger.Info().Str("id", id).Msg("expense removed")
			cmd.Printf("Removed %s\n", id)
			return nil
		},
	}

	return cmd
}
