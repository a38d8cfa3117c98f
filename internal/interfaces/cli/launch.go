package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewLaunchCommand creates the launch command: resolve the best match for a
// query and spawn it without opening the picker.
func NewLaunchCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "launch <query>",
		Short: "Launch the best match for a query directly",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			if err := container.Catalog.Refresh(cmd.Context()); err != nil {
				return err
			}

			matches := filterRecords(container.Catalog.Snapshot(), query)
			if len(matches) == 0 {
				return fmt.Errorf("no application matches %q", query)
			}

			rec := matches[0]
			if err := container.Launcher.Launch(rec.Command()); err != nil {
				return fmt.Errorf("could not launch %s: %w", rec.Name(), err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Launched %s\n", rec.Name())
			return nil
		},
	}
}
