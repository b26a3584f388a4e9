package cli

import (
	"github.com/spf13/cobra"

	"github.com/spendpad/spendpad/internal/expense"
	"github.com/spendpad/spendpad/internal/storage"
)

// openLedger rehydrates the store from the persisted slot. Every command
// works on a fresh load; the process is the only writer, so no coordination
// is needed between invocations.
func openLedger(cmd *cobra.Command) (*expense.Store, *storage.FileStore) {
	cfg := configFromCmd(cmd)
	files := storage.NewFileStore(cfg.DataFile)
	records := files.Load(cmd.Context())
	return expense.NewStore(expense.WithRecords(records)), files
}
