package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// NewPickCommand creates the pick command opening the interactive picker.
// The root command does the same when invoked bare.
func NewPickCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Open the interactive application picker",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPicker(container)
		},
	}
}

// runPicker starts the Bubble Tea picker program.
func runPicker(container *CLIContainer) error {
	program := tea.NewProgram(newPickerModel(container), tea.WithAltScreen())

	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("picker failed: %w", err)
	}

	if m, ok := final.(pickerModel); ok && m.launched != "" {
		fmt.Printf("Launched %s\n", m.launched)
	}
	return nil
}
