package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/spendpad/spendpad/internal/tui"
)

// NewTUICmd creates the tui command, which opens the interactive expense
// page explicitly (the bare root command does the same on a terminal).
func NewTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive expense page",
		RunE:  runTUI,
	}
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg := configFromCmd(cmd)
	store, files := openLedger(cmd)

	model := tui.NewModel(cmd.Context(), cfg, store, files)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run interactive view: %w", err)
	}
	return nil
}
