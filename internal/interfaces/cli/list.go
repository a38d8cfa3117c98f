package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// listEntry is the JSON shape of one catalog record.
type listEntry struct {
	Name    string `json:"name"`
	Command string `json:"command"`
	Icon    string `json:"icon,omitempty"`
}

// NewListCommand creates the list command printing the discovered catalog.
func NewListCommand(container *CLIContainer) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the discovered applications",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := container.Catalog.Refresh(cmd.Context()); err != nil {
				return err
			}

			records := container.Catalog.Snapshot()
			entries := make([]listEntry, len(records))
			for i, rec := range records {
				entries[i] = listEntry{Name: rec.Name(), Command: rec.Command(), Icon: rec.Icon()}
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCOMMAND\tICON")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, e.Command, e.Icon)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}
